package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Validation errors for specific resources.
var (
	ErrAmountNotPositive             = errors.New("the amount must be larger than zero")
	ErrBudgetAmountNegative          = errors.New("budget amounts must not be negative")
	ErrBudgetMonthNotUnique          = errors.New("there already is a budget for this category and month")
	ErrCardDietStartDateNotSet       = errors.New("the start date must be set when card diet mode is enabled")
	ErrCategoryGroupInvalid          = errors.New("the category group must be one of FIXED, VARIABLE, SAVINGS, DEBT")
	ErrCategoryNameNotUnique         = errors.New("the category name is already in use")
	ErrCategoryRuleMatchEmpty        = errors.New("the match pattern of a category rule must not be empty")
	ErrDebtDueDayInvalid             = errors.New("the due day must be between 1 and 31")
	ErrGoalMonthNotUnique            = errors.New("there already is a goal for this month")
	ErrReminderTypeInvalid           = errors.New("the reminder type must be one of CARD_CLOSE, CARD_DUE, SUBSCRIPTION, OTHER")
	ErrSubscriptionMerchantNotUnique = errors.New("there already is a subscription for this merchant")
	ErrSubscriptionStatusInvalid     = errors.New("the subscription status must be one of ACTIVE, PAUSED, CANCELLED")
	ErrTransactionAccountInvalid     = errors.New("the account must be one of CASH, BANK, CARD")
	ErrTransactionTypeInvalid        = errors.New("the transaction type must be one of INCOME, EXPENSE")
	ErrWeeklyBudgetWeekInvalid       = errors.New("the week must be between 1 and 53")
)
