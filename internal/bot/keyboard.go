package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vosokin/ledgerbot/internal/model"
)

func entryTypeKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(model.EntryTypeIncome.ChoiceLabel()),
			tgbotapi.NewKeyboardButton(model.EntryTypeExpense.ChoiceLabel()),
		),
	)
	kb.OneTimeKeyboard = true
	return kb
}

func categoriesKeyboard(t model.EntryType) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, c := range model.Categories(t) {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(c.Label, string(t)+"_"+c.Token),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
