package zakat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBelowNisab(t *testing.T) {
	assets := Assets{Cash: 50000, BankBalance: 30000}
	liabilities := Liabilities{PersonalLoan: 10000}

	result := Calculate(assets, liabilities, 4000)

	assert.Equal(t, 80000.0, result.TotalAssets)
	assert.Equal(t, 10000.0, result.TotalLiabilities)
	assert.Equal(t, 70000.0, result.NetWorth)
	assert.Equal(t, 52.5*4000, result.Nisab)
	assert.False(t, result.IsZakatApplicable)
	assert.Equal(t, 0.0, result.ZakatAmount)
}

func TestCalculateAboveNisab(t *testing.T) {
	assets := Assets{Cash: 500000, Gold: 200000, BusinessStock: 100000}
	liabilities := Liabilities{BusinessLoan: 50000, UtilityBills: 5000}

	result := Calculate(assets, liabilities, 4000)

	netWorth := 800000.0 - 55000.0
	assert.Equal(t, netWorth, result.NetWorth)
	assert.True(t, result.IsZakatApplicable)
	assert.InDelta(t, netWorth*0.025, result.ZakatAmount, 1e-9)
}

func TestCalculateNetWorthEqualsNisab(t *testing.T) {
	// Exactly at the threshold, zakat applies.
	silver := 1000.0
	assets := Assets{Cash: NisabSilverTola * silver}

	result := Calculate(assets, Liabilities{}, silver)

	assert.Equal(t, result.Nisab, result.NetWorth)
	assert.True(t, result.IsZakatApplicable)
	assert.InDelta(t, result.NetWorth*0.025, result.ZakatAmount, 1e-9)
}

func TestNisabProportionalToSilverPrice(t *testing.T) {
	assets := Assets{Cash: 123456}
	l := Liabilities{}

	at1000 := Calculate(assets, l, 1000)
	at2000 := Calculate(assets, l, 2000)

	assert.Equal(t, at1000.Nisab*2, at2000.Nisab)
	// Changing the silver price must not alter the entered asset totals.
	assert.Equal(t, at1000.TotalAssets, at2000.TotalAssets)
	assert.Equal(t, at1000.NetWorth, at2000.NetWorth)
}

func TestAssetAndLiabilityTotalsSumEveryField(t *testing.T) {
	assets := Assets{
		Gold: 1, Silver: 1, Cash: 1, ForeignCurrency: 1, BankBalance: 1,
		SavingsCertificates: 1, InsurancePremium: 1, ProvidentFund: 1,
		GivenLoans: 1, CreditedMoney: 1, DepositedMoney: 1,
		SecurityMoneyRent: 1, SecurityMoneyOther: 1, BusinessCash: 1,
		PendingBusinessPayment: 1, BusinessStock: 1, OtherBusinessAssets: 1,
		PartnershipNetAssets: 1, PartnershipInvestment: 1,
		SharesCapitalGain: 1, SharesDividendNet: 1, SharesDividendMarket: 1,
	}
	assert.Equal(t, 22.0, assets.Total())

	liabilities := Liabilities{
		PersonalLoan: 1, BusinessLoan: 1, PendingInstallments: 1,
		UnpaidMohr: 1, UnpaidSalary: 1, UtilityBills: 1, PreviousZakat: 1,
	}
	assert.Equal(t, 7.0, liabilities.Total())
}

func TestGoldValueByKarat(t *testing.T) {
	prices := map[string]float64{"22": 209000, "21": 200000, "18": 171000}

	assert.Equal(t, 2*200000.0, GoldValue(2, "21", prices))
	// Unknown karat falls back to 22-carat.
	assert.Equal(t, 3*209000.0, GoldValue(3, "24", prices))
}
