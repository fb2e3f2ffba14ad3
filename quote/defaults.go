package quote

// Compiled-in fallbacks used when no brand profile record exists for a
// variant. The construction values mirror the long-standing defaults of
// the construction quote form.

var constructionSections = []string{
	"OBRA CIVIL",
	"ELECTRICIDAD",
	"PLOMERÍA",
	"PISOS Y AZULEJOS",
	"HERRERIA",
	"TABLA YESO",
	"CARPINTERÍA",
	"VENTANERÍA",
	"ACABADOS",
	"MOBILIARIO",
	"VARIOS",
}

var constructionTerms = []string{
	"No se incluye ningún otro servicio que no esté descrito en los renglones de esta cotización.",
	"En esta propuesta se presentan los costos directos de cada renglón, y se contempla cobrar un % de honorarios sobre la inversión por coordinación, supervisión y administración del proyecto.",
	"Se dará inicio a los trabajos al recibir el anticipo y aprobación por escrito por parte del cliente.",
	"Tiempo de entrega: 5 semanas",
}

var defaultFooter = FooterInfo{
	Phone:   "(502)5551-3554",
	Email:   "lpbarrios@aureagt.com",
	Address: "4 avenida 19-90 zona 14, oficina 7, nivel 3.",
}

// ConstructionDefaults returns the fallback seed for the construction variant.
func ConstructionDefaults() Defaults {
	return Defaults{
		SectionNames:   append([]string(nil), constructionSections...),
		Terms:          append([]string(nil), constructionTerms...),
		PaymentInfo:    PaymentInfo{Method: "A Convenir"},
		FooterInfo:     defaultFooter,
		TaxRatePercent: 12,
	}
}

// SoftwareDefaults returns the fallback seed for the software variant.
// It starts with no sections; the structured bank fields are filled in
// by the user.
func SoftwareDefaults() Defaults {
	return Defaults{
		PaymentInfo: PaymentInfo{
			Method: "Transferencia bancaria",
			Bank:   BankAccount{Currency: "GTQ"},
		},
		FooterInfo:     defaultFooter,
		TaxRatePercent: 12,
	}
}

// DefaultsFor returns the compiled-in defaults for a variant.
func DefaultsFor(variant Variant) Defaults {
	if variant == VariantSoftware {
		return SoftwareDefaults()
	}
	return ConstructionDefaults()
}

// ParseVariant normalizes a raw variant string, defaulting to the
// construction variant for anything unrecognized.
func ParseVariant(s string) Variant {
	if Variant(s) == VariantSoftware {
		return VariantSoftware
	}
	return VariantConstruction
}
