package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	converter "github.com/smartconv/converter"
)

type ConversionService struct {
	rates    converter.RateGetter
	validate *validator.Validate
	logger   *slog.Logger
}

func NewConversionService(rates converter.RateGetter, logger *slog.Logger) *ConversionService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ConversionService{
		rates:    rates,
		validate: validator.New(),
		logger:   logger,
	}
}

// Convert computes amount / rate(from) * rate(to). The two rate
// lookups are independent and run concurrently. Validation happens
// before anything touches the network.
func (s *ConversionService) Convert(ctx context.Context, amount float64, from, to string) (converter.Record, error) {
	request := converter.ConversionRequest{
		Amount: amount,
		From:   strings.ToUpper(strings.TrimSpace(from)),
		To:     strings.ToUpper(strings.TrimSpace(to)),
	}

	if err := s.validateRequest(request); err != nil {
		return converter.Record{}, err
	}

	var rateFrom, rateTo float64

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		rateFrom, err = s.rates.GetRate(groupCtx, request.From)
		return err
	})

	group.Go(func() (err error) {
		rateTo, err = s.rates.GetRate(groupCtx, request.To)
		return err
	})

	if err := group.Wait(); err != nil {
		return converter.Record{}, err
	}

	record := converter.Record{
		Amount:    request.Amount,
		From:      request.From,
		To:        request.To,
		Result:    convert(request.Amount, rateFrom, rateTo),
		CreatedAt: time.Now(),
	}

	s.logger.Debug("conversion computed",
		"amount", record.Amount,
		"from", record.From,
		"to", record.To,
		"rate_from", rateFrom,
		"rate_to", rateTo,
		"result", record.Result,
	)

	return record, nil
}

func (s *ConversionService) validateRequest(request converter.ConversionRequest) error {
	if math.IsNaN(request.Amount) || math.IsInf(request.Amount, 0) {
		return fmt.Errorf("%w: %f", converter.ErrInvalidAmount, request.Amount)
	}

	err := s.validate.Struct(request)

	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors

	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			if fieldError.Field() == "Amount" {
				return fmt.Errorf("%w: %f", converter.ErrInvalidAmount, request.Amount)
			}
		}

		return fmt.Errorf("%w: %s", converter.ErrUnknownCurrency, validationErrors[0].Value())
	}

	return err
}

func convert(amount, rateFrom, rateTo float64) float64 {
	value := decimal.NewFromFloat(amount)

	// Convert into the base currency first, then into the target.
	result, _ := value.
		Div(decimal.NewFromFloat(rateFrom)).
		Mul(decimal.NewFromFloat(rateTo)).
		Float64()

	return result
}
