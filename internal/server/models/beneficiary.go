package models

const (
	// FullAllocation is the percentage sum of a usable configuration.
	FullAllocation = 100

	MaxFixedBeneficiaries   = 10
	MaxDynamicBeneficiaries = 1000
	BeneficiaryPageSize     = 50
)

// Beneficiary is one allocation entry: recipient receives Percentage of the
// vault balance on trigger.
type Beneficiary struct {
	Recipient  string
	Percentage int
}

// BeneficiaryList is the header row of the dynamic list, kept in step with
// its entries so count and sum are O(1).
type BeneficiaryList struct {
	Owner           string
	Count           int
	TotalPercentage int
}

// Remaining returns the unallocated percentage, floored at zero.
func (l *BeneficiaryList) Remaining() int {
	if l.TotalPercentage >= FullAllocation {
		return 0
	}
	return FullAllocation - l.TotalPercentage
}

// Complete reports whether the list is non-empty and sums to 100.
func (l *BeneficiaryList) Complete() bool {
	return l.Count > 0 && l.TotalPercentage == FullAllocation
}

// BeneficiaryPage is one page of the dynamic list.
type BeneficiaryPage struct {
	Page          int
	TotalCount    int
	HasMore       bool
	Beneficiaries []Beneficiary
}

// SumPercentages totals the allocation of list.
func SumPercentages(list []Beneficiary) int {
	total := 0
	for _, b := range list {
		total += b.Percentage
	}
	return total
}
