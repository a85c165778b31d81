package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrCategoryNameNotUnique = errors.New("the category name must be unique")
	ErrCategoryNotFound      = errors.New("the category you specified does not exist")
)

var (
	ErrAmountNotPositive           = errors.New("the amount must be larger than zero")
	ErrCurrencyInvalid             = errors.New("the currency must be a valid ISO 4217 code")
	ErrFrequencyNotAllowed         = errors.New("the frequency is not allowed")
	ErrDateMissing                 = errors.New("one time items need a date")
	ErrStartDateMissing            = errors.New("recurring items need a start date")
	ErrEndDateBeforeStartDate      = errors.New("the end date must not be before the start date")
	ErrFirstPaymentDateMissing     = errors.New("installments need a first payment date")
	ErrNumberOfPaymentsNotPositive = errors.New("the number of payments must be larger than zero")
)
