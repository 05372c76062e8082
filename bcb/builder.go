package bcb

import "strings"

// ChargeLocation stands in for the PSP-hosted location record returned by
// the (out-of-scope) Pix REST API when an immediate charge is created.
type ChargeLocation struct {
	// URL is the address a wallet fetches the full charge payload from,
	// including its "https://" scheme.
	URL string
}

// ImmediateCharge stands in for the upstream payment record the (out-of-
// scope) Pix REST API client returns after registering a charge: the amount
// expected, the receiving Pix key, and where the wallet should look up the
// charge details.
type ImmediateCharge struct {
	Value          string
	ReceiverKey    string
	DebtorName     string
	DebtorDocument string
	Location       ChargeLocation
}

// BuildDynamicSchema translates charge into a DynamicSchema ready for
// SerializeWithChecksum, mapping charge.Value through to TransactionAmount
// and applying the standard dynamic-QR constructor defaults: format
// indicator "01", initiation method "12", merchant GUI br.gov.bcb.pix,
// category "0000", currency "986", country "BR", additional data txid
// "***", postal code absent.
func BuildDynamicSchema(charge ImmediateCharge, merchantName, merchantCity string) DynamicSchema {
	poi := "12"
	rec := DynamicSchema{
		FormatIndicator:         "01",
		PointOfInitiationMethod: &poi,
		MerchantAccountInformation: MerchantAccountInformationDynamic{
			GUI:         GUI,
			LocationURL: stripScheme(charge.Location.URL),
		},
		MerchantCategoryCode: "0000",
		TransactionCurrency:  "986",
		CountryCode:          "BR",
		MerchantName:         merchantName,
		MerchantCity:         merchantCity,
		AdditionalData:       AdditionalData{TxID: NotApplicableTxID},
	}
	if charge.Value != "" {
		rec.TransactionAmount = &charge.Value
	}
	return rec
}

// stripScheme removes a leading "https://" or "http://", matching the wire
// convention that a merchant account information location carries no
// scheme.
func stripScheme(url string) string {
	for _, prefix := range []string{"https://", "http://"} {
		if rest, ok := strings.CutPrefix(url, prefix); ok {
			return rest
		}
	}
	return url
}
