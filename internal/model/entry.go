package model

import (
	"strings"
	"unicode"
)

// EntryType is the top-level classification of a record.
type EntryType string

const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

// Valid reports whether t is one of the known entry types.
func (t EntryType) Valid() bool {
	return t == EntryTypeIncome || t == EntryTypeExpense
}

// Label returns the title-cased form persisted to the ledger.
func (t EntryType) Label() string {
	switch t {
	case EntryTypeIncome:
		return "Income"
	case EntryTypeExpense:
		return "Expense"
	}
	return ""
}

// ChoiceLabel returns the reply-keyboard button text for the entry type.
func (t EntryType) ChoiceLabel() string {
	switch t {
	case EntryTypeIncome:
		return "Доход"
	case EntryTypeExpense:
		return "Расход"
	}
	return ""
}

// EntryTypeFromChoice maps a reply-keyboard button text back to an entry
// type. Anything else is an unrecognized choice.
func EntryTypeFromChoice(text string) (EntryType, bool) {
	switch strings.TrimSpace(text) {
	case EntryTypeIncome.ChoiceLabel():
		return EntryTypeIncome, true
	case EntryTypeExpense.ChoiceLabel():
		return EntryTypeExpense, true
	}
	return "", false
}

// Category is one option of the fixed per-type category set. Token is the
// callback-data suffix, Label the button text shown to the user.
type Category struct {
	Token string
	Label string
}

var incomeCategories = []Category{
	{Token: "salary", Label: "Зарплата"},
	{Token: "freelance", Label: "Фриланс"},
	{Token: "gift", Label: "Подарки"},
	{Token: "other", Label: "Другое"},
}

var expenseCategories = []Category{
	{Token: "shopping", Label: "Покупки"},
	{Token: "payments", Label: "Платежи"},
	{Token: "debt", Label: "Задолженности"},
	{Token: "fun", Label: "Развлечения"},
	{Token: "other", Label: "Другое"},
}

// Categories returns the fixed category set for the given entry type.
func Categories(t EntryType) []Category {
	switch t {
	case EntryTypeIncome:
		return incomeCategories
	case EntryTypeExpense:
		return expenseCategories
	}
	return nil
}

// TitleLabel turns a category token into its ledger label: "salary" -> "Salary".
func TitleLabel(token string) string {
	if token == "" {
		return ""
	}
	r := []rune(token)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
