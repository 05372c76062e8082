// Package bcb declares the Pix wire schemas published by Brazil's central
// bank (Banco Central do Brasil) as plain pixqr record types, plus the
// defaults and upstream-payment adapter described in spec section 6.
package bcb

// GUI is the Globally Unique Identifier Banco Central assigns the Pix
// payment scheme inside a merchant account information container.
const GUI = "br.gov.bcb.pix"

// NotApplicableTxID is the additional-data transaction identifier used when
// the merchant has no transaction reference of its own.
const NotApplicableTxID = "***"

// MerchantAccountInformationStatic is the tag-26 container of a static Pix
// QR: the merchant's own Pix key, with no PSP-hosted location.
type MerchantAccountInformationStatic struct {
	GUI string `pix:"00"`
	Key string `pix:"01"`
}

// MerchantAccountInformationDynamic is the tag-26 container of a dynamic Pix
// QR: a PSP-hosted URL the paying wallet fetches the actual charge from.
// LocationURL is stored without its "https://" scheme, matching the wire
// convention.
type MerchantAccountInformationDynamic struct {
	GUI         string `pix:"00"`
	LocationURL string `pix:"25"`
}

// AdditionalData is the tag-62 container. TxID is NotApplicableTxID when the
// merchant has no transaction identifier of its own.
type AdditionalData struct {
	TxID string `pix:"05"`
}

// StaticSchema is a self-contained Pix QR: the full payload is present in
// the code itself, with no PSP round trip required to pay it.
type StaticSchema struct {
	FormatIndicator            string                           `pix:"00"`
	MerchantAccountInformation MerchantAccountInformationStatic `pix:"26"`
	MerchantCategoryCode       string                           `pix:"52"`
	TransactionCurrency        string                           `pix:"53"`
	TransactionAmount          *string                          `pix:"54"`
	CountryCode                string                           `pix:"58"`
	MerchantName               string                           `pix:"59"`
	MerchantCity               string                           `pix:"60"`
	PostalCode                 *string                          `pix:"61"`
	AdditionalData             AdditionalData                   `pix:"62"`
}

// DynamicSchema is a Pix QR whose merchant account information points at a
// PSP-hosted location instead of carrying the charge details directly.
type DynamicSchema struct {
	FormatIndicator            string                            `pix:"00"`
	PointOfInitiationMethod    *string                           `pix:"01"`
	MerchantAccountInformation MerchantAccountInformationDynamic `pix:"26"`
	MerchantCategoryCode       string                            `pix:"52"`
	TransactionCurrency        string                            `pix:"53"`
	TransactionAmount          *string                           `pix:"54"`
	CountryCode                string                            `pix:"58"`
	MerchantName               string                            `pix:"59"`
	MerchantCity               string                            `pix:"60"`
	PostalCode                 *string                           `pix:"61"`
	AdditionalData             AdditionalData                    `pix:"62"`
}
