// Package zakat implements the Zakat calculation: a pure function of the
// entered assets, liabilities and the current silver price.
package zakat

// Nisab thresholds in tola.
const (
	NisabGoldTola   = 7.5
	NisabSilverTola = 52.5
)

// ZakatRate is the levy on qualifying net worth.
const ZakatRate = 0.025

// Assets holds the zakatable asset fields, all in taka except the raw
// gold/silver weights which are carried for display only.
type Assets struct {
	Gold                   float64 `json:"gold"`
	Silver                 float64 `json:"silver"`
	Cash                   float64 `json:"cash"`
	ForeignCurrency        float64 `json:"foreignCurrency"`
	BankBalance            float64 `json:"bankBalance"`
	SavingsCertificates    float64 `json:"savingsCertificates"`
	InsurancePremium       float64 `json:"insurancePremium"`
	ProvidentFund          float64 `json:"providentFund"`
	GivenLoans             float64 `json:"givenLoans"`
	CreditedMoney          float64 `json:"creditedMoney"`
	DepositedMoney         float64 `json:"depositedMoney"`
	SecurityMoneyRent      float64 `json:"securityMoneyRent"`
	SecurityMoneyOther     float64 `json:"securityMoneyOther"`
	BusinessCash           float64 `json:"businessCash"`
	PendingBusinessPayment float64 `json:"pendingBusinessPayment"`
	BusinessStock          float64 `json:"businessStock"`
	OtherBusinessAssets    float64 `json:"otherBusinessAssets"`
	PartnershipNetAssets   float64 `json:"partnershipNetAssets"`
	PartnershipInvestment  float64 `json:"partnershipInvestment"`
	SharesCapitalGain      float64 `json:"sharesCapitalGain"`
	SharesDividendNet      float64 `json:"sharesDividendNet"`
	SharesDividendMarket   float64 `json:"sharesDividendMarket"`
}

// Total sums every asset field.
func (a Assets) Total() float64 {
	return a.Gold + a.Silver + a.Cash + a.ForeignCurrency + a.BankBalance +
		a.SavingsCertificates + a.InsurancePremium + a.ProvidentFund +
		a.GivenLoans + a.CreditedMoney + a.DepositedMoney +
		a.SecurityMoneyRent + a.SecurityMoneyOther + a.BusinessCash +
		a.PendingBusinessPayment + a.BusinessStock + a.OtherBusinessAssets +
		a.PartnershipNetAssets + a.PartnershipInvestment +
		a.SharesCapitalGain + a.SharesDividendNet + a.SharesDividendMarket
}

// Liabilities holds the deductible liability fields, in taka.
type Liabilities struct {
	PersonalLoan        float64 `json:"personalLoan"`
	BusinessLoan        float64 `json:"businessLoan"`
	PendingInstallments float64 `json:"pendingInstallments"`
	UnpaidMohr          float64 `json:"unpaidMohr"`
	UnpaidSalary        float64 `json:"unpaidSalary"`
	UtilityBills        float64 `json:"utilityBills"`
	PreviousZakat       float64 `json:"previousZakat"`
}

// Total sums every liability field.
func (l Liabilities) Total() float64 {
	return l.PersonalLoan + l.BusinessLoan + l.PendingInstallments +
		l.UnpaidMohr + l.UnpaidSalary + l.UtilityBills + l.PreviousZakat
}

// Calculation is the full breakdown returned to the caller.
type Calculation struct {
	TotalAssets       float64 `json:"totalAssets"`
	TotalLiabilities  float64 `json:"totalLiabilities"`
	NetWorth          float64 `json:"netWorth"`
	Nisab             float64 `json:"nisab"`
	ZakatAmount       float64 `json:"zakatAmount"`
	IsZakatApplicable bool    `json:"isZakatApplicable"`
}

// Calculate computes the Zakat breakdown. The nisab threshold is the silver
// nisab: 52.5 tola at the given price per tola. Zakat applies at 2.5% when
// net worth meets or exceeds nisab.
func Calculate(assets Assets, liabilities Liabilities, silverPerTola float64) Calculation {
	totalAssets := assets.Total()
	totalLiabilities := liabilities.Total()

	netWorth := totalAssets - totalLiabilities
	nisab := NisabSilverTola * silverPerTola

	applicable := netWorth >= nisab
	var due float64
	if applicable {
		due = netWorth * ZakatRate
	}

	return Calculation{
		TotalAssets:       totalAssets,
		TotalLiabilities:  totalLiabilities,
		NetWorth:          netWorth,
		Nisab:             nisab,
		ZakatAmount:       due,
		IsZakatApplicable: applicable,
	}
}

// GoldValue prices a gold weight in tola at the karat's per-tola rate.
// Unknown karats fall back to 22-carat, the default the form shows.
func GoldValue(amount float64, karat string, pricesByKarat map[string]float64) float64 {
	price, ok := pricesByKarat[karat]
	if !ok {
		price = pricesByKarat["22"]
	}
	return amount * price
}
