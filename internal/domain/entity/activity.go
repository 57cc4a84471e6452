package entity

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	ActivityTypeExpense = "expense"
	ActivityTypeDeposit = "deposit"
)

// ActivityItem is one entry in the recent-activity feed. Items are
// immutable once created and only ever prepended to the list.
type ActivityItem struct {
	Type   string `json:"type"`
	Detail string `json:"detail"`
	Date   string `json:"date"`
}

// amountPattern matches the peso amount embedded in a detail string,
// e.g. "Spent ₱25.50 from Checking".
var amountPattern = regexp.MustCompile(`₱([\d,.]+)`)

// Amount parses the currency amount embedded in the detail string.
// Returns 0 when no amount is present.
func (a ActivityItem) Amount() float64 {
	match := amountPattern.FindStringSubmatch(a.Detail)
	if match == nil {
		return 0
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
	if err != nil {
		return 0
	}
	return value
}

// Time parses the item date. The offline store writes RFC3339; the
// backend serializes ISO timestamps, which RFC3339 also covers.
func (a ActivityItem) Time() (time.Time, error) {
	return time.Parse(time.RFC3339, a.Date)
}

// NewExpenseActivity builds the activity entry for a recorded expense.
func NewExpenseActivity(amount float64, note string, now time.Time) ActivityItem {
	detail := fmt.Sprintf("Spent ₱%.2f from Checking", amount)
	if note != "" {
		detail = fmt.Sprintf("%s (%s)", detail, note)
	}
	return ActivityItem{
		Type:   ActivityTypeExpense,
		Detail: detail,
		Date:   now.Format(time.RFC3339),
	}
}

// NewDepositActivity builds the activity entry for a recorded deposit.
func NewDepositActivity(amount float64, account string, now time.Time) ActivityItem {
	return ActivityItem{
		Type:   ActivityTypeDeposit,
		Detail: fmt.Sprintf("Deposited ₱%.2f to %s", amount, titleCase(account)),
		Date:   now.Format(time.RFC3339),
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
