package spotrac

import "capsheet-backend/lib/money"

// ContractYear is one season's terms inside a contract. Currency fields
// hold display text; the placeholder "-" the site uses for absent
// incentives and bonuses is already substituted with "$0" by the
// contract parser, and an absent option is the empty string.
type ContractYear struct {
	Season      string
	Age         int
	Option      string
	CurrentYear bool

	BaseSalary         string
	LikelyIncentives   string
	UnlikelyIncentives string
	TradeBonus         string
	CapHit             string
	PctOfCap           string
	YearlyCash         string
	GuaranteedMoney    string
}

func (y ContractYear) BaseSalaryInt() (int64, error) {
	return money.ParseDollars(y.BaseSalary)
}

func (y ContractYear) LikelyIncentivesInt() (int64, error) {
	return money.ParseDollars(y.LikelyIncentives)
}

func (y ContractYear) UnlikelyIncentivesInt() (int64, error) {
	return money.ParseDollars(y.UnlikelyIncentives)
}

func (y ContractYear) TradeBonusInt() (int64, error) {
	return money.ParseDollars(y.TradeBonus)
}

func (y ContractYear) CapHitInt() (int64, error) {
	return money.ParseDollars(y.CapHit)
}

func (y ContractYear) YearlyCashInt() (int64, error) {
	return money.ParseDollars(y.YearlyCash)
}

func (y ContractYear) GuaranteedMoneyInt() (int64, error) {
	return money.ParseDollars(y.GuaranteedMoney)
}

// PctOfCapDecimal is the season's share of the salary cap as a decimal.
// "25.90%" -> 0.259
func (y ContractYear) PctOfCapDecimal() (float64, error) {
	return money.ParsePercent(y.PctOfCap)
}

// SeasonRange is the season label as a year pair. "2023-24" -> (2023, 2024)
func (y ContractYear) SeasonRange() (int, int, error) {
	return money.ParseSeason(y.Season)
}
