package domain

// Portfolio is the fixed set of asset groups, populated once per
// reporting pass and read-only afterwards.
type Portfolio struct {
	Bonds      *Asset
	Shares     *Asset
	Etfs       *Asset
	Currencies *Asset
	Futures    *Asset
}

func NewPortfolio() *Portfolio {
	return &Portfolio{
		Bonds:      NewAsset("Bonds", ProfitCoupon),
		Shares:     NewAsset("Shares", ProfitDividend),
		Etfs:       NewAsset("Etfs", ProfitNone),
		Currencies: NewAsset("Currencies", ProfitNone),
		Futures:    NewAsset("Futures", ProfitNone),
	}
}

// Assets returns the groups in report order.
func (p *Portfolio) Assets() []*Asset {
	return []*Asset{p.Etfs, p.Bonds, p.Shares, p.Currencies, p.Futures}
}

// Asset picks the group a paper of the given class belongs to.
func (p *Portfolio) Asset(class InstrumentClass) *Asset {
	switch class {
	case ClassBond:
		return p.Bonds
	case ClassShare:
		return p.Shares
	case ClassEtf:
		return p.Etfs
	case ClassCurrency:
		return p.Currencies
	case ClassFutures:
		return p.Futures
	}
	return nil
}

// Len is the total number of papers across all groups.
func (p *Portfolio) Len() int {
	n := 0
	for _, a := range p.Assets() {
		n += a.Len()
	}
	return n
}

func (p *Portfolio) foldMoney(value func(*Asset) Money) (Money, error) {
	total := Zero(p.currency())
	for _, a := range p.Assets() {
		if a.Len() == 0 {
			continue
		}
		var err error
		if total, err = total.Add(value(a)); err != nil {
			return Money{}, err
		}
	}
	return total, nil
}

// currency anchors portfolio totals on the first non-empty group.
func (p *Portfolio) currency() Currency {
	for _, a := range p.Assets() {
		if a.Len() > 0 {
			return a.Currency()
		}
	}
	return RUB
}

func (p *Portfolio) Balance() (Money, error) {
	return p.foldMoney((*Asset).Balance)
}

func (p *Portfolio) Current() (Money, error) {
	return p.foldMoney((*Asset).Current)
}

func (p *Portfolio) Dividends() (Money, error) {
	return p.foldMoney((*Asset).Dividends)
}

func (p *Portfolio) Fees() (Money, error) {
	return p.foldMoney((*Asset).Fees)
}

func (p *Portfolio) Income() (Income, error) {
	total := ZeroIncome(p.currency())
	for _, a := range p.Assets() {
		if a.Len() == 0 {
			continue
		}
		var err error
		if total, err = total.Add(a.Income()); err != nil {
			return Income{}, err
		}
	}
	return total, nil
}

func (p *Portfolio) TotalIncome() (Income, error) {
	income, err := p.Income()
	if err != nil {
		return Income{}, err
	}
	dividends, err := p.Dividends()
	if err != nil {
		return Income{}, err
	}
	income.Current = income.Current.Add(dividends.Value)
	return income, nil
}
