package commands

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dogecoinfoundation/doge-prize/internal/domain/audit"
	"github.com/dogecoinfoundation/doge-prize/internal/domain/prize"
	"github.com/dogecoinfoundation/doge-prize/internal/infra"
	"github.com/dogecoinfoundation/doge-prize/internal/pkg/errs"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/queries"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/shared"
)

var (
	ErrDuplicateCode     = errs.New("a prize with this redemption code already exists")
	ErrInvalidPrizeType  = errs.New("invalid prize type")
	ErrInvalidPrizeState = errs.New("invalid prize status")
	ErrInvalidAmount     = errs.New("a positive amount is required for this prize type")
)

// CSVValidationError aggregates every row problem found in an import so the
// operator can fix the file in one pass.
type CSVValidationError struct {
	Problems []string
}

func (e *CSVValidationError) Error() string {
	return fmt.Sprintf("csv validation failed: %s", strings.Join(e.Problems, "; "))
}

type CreatePrizeParams struct {
	RedemptionCode string
	Type           string
	Amount         float64
}

type UpdatePrizeParams struct {
	RedemptionCode string
	Type           string
	Amount         float64
	Status         string
}

type PrizeCommands interface {
	Create(ctx context.Context, params CreatePrizeParams) (*queries.PrizeView, error)
	Update(ctx context.Context, id int64, params UpdatePrizeParams) (*queries.PrizeView, error)
	Delete(ctx context.Context, id int64) error
	ImportCSV(ctx context.Context, r io.Reader, filename string) (int64, error)
}

type prizeUseCaseImpl struct {
	uow     shared.UnitOfWork
	auditor AuditSink
}

func NewPrizeCommands(uow shared.UnitOfWork, auditor AuditSink) PrizeCommands {
	return &prizeUseCaseImpl{uow: uow, auditor: auditor}
}

func (u *prizeUseCaseImpl) Create(ctx context.Context, params CreatePrizeParams) (*queries.PrizeView, error) {
	amount, err := prize.NewAmountFromDoge(params.Amount)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAmount)
	}
	typ, err := prize.NewType(params.Type)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPrizeType)
	}
	entity, err := prize.NewPrize(strings.TrimSpace(params.RedemptionCode), typ, amount)
	if err != nil {
		switch err {
		case prize.ErrEmptyCode:
			return nil, ErrCodeRequired
		case prize.ErrAmountRequired:
			return nil, ErrInvalidAmount
		}
		return nil, err
	}

	var snap *shared.PrizeSnapshot
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Prizes().Create(ctx, entity.Code(), entity.Type().String(), entity.Amount().Koinu())
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateCode
			}
			return errs.Mark(err, ErrDatabase)
		}
		snap = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.auditor.Append(ctx, audit.ActionCreate, audit.EntityPrize, snap.ID,
		fmt.Sprintf("Created %s prize with redemption code %s and amount %g DOGE",
			snap.Type, snap.RedemptionCode, koinuToDoge(snap.AmountKoinu)))
	return prizeViewFromSnapshot(snap), nil
}

func (u *prizeUseCaseImpl) Update(ctx context.Context, id int64, params UpdatePrizeParams) (*queries.PrizeView, error) {
	typ, err := prize.NewType(params.Type)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPrizeType)
	}
	status, err := prize.NewStatus(params.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPrizeState)
	}
	amount, err := prize.NewAmountFromDoge(params.Amount)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAmount)
	}
	if typ == prize.TypeRandom {
		amount = prize.ZeroAmount()
	} else if amount.IsZero() {
		return nil, ErrInvalidAmount
	}
	code := strings.TrimSpace(params.RedemptionCode)
	if code == "" {
		return nil, ErrCodeRequired
	}

	var snap *shared.PrizeSnapshot
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updated, err := tx.Prizes().Update(ctx, id, code, typ.String(), amount.Koinu(), status.String())
		if err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return ErrPrizeNotFound
			case infra.IsKind(err, infra.KindDuplicateKey):
				return ErrDuplicateCode
			}
			return errs.Mark(err, ErrDatabase)
		}
		snap = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.auditor.Append(ctx, audit.ActionUpdate, audit.EntityPrize, snap.ID,
		fmt.Sprintf("Updated prize %d: code %s, type %s, amount %g DOGE, status %s",
			snap.ID, snap.RedemptionCode, snap.Type, koinuToDoge(snap.AmountKoinu), snap.Status))
	return prizeViewFromSnapshot(snap), nil
}

func (u *prizeUseCaseImpl) Delete(ctx context.Context, id int64) error {
	var snap *shared.PrizeSnapshot
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Prizes().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPrizeNotFound
			}
			return errs.Mark(err, ErrDatabase)
		}
		if err := tx.Prizes().Delete(ctx, id); err != nil {
			return errs.Mark(err, ErrDatabase)
		}
		snap = found
		return nil
	})
	if err != nil {
		return err
	}

	u.auditor.Append(ctx, audit.ActionDelete, audit.EntityPrize, snap.ID,
		fmt.Sprintf("Prize %d with amount %g DOGE and redemption code %s was deleted",
			snap.ID, koinuToDoge(snap.AmountKoinu), snap.RedemptionCode))
	return nil
}

// ImportCSV loads prizes from a code,type,amount file. The whole file is
// validated before any row is written; one bad row rejects the import.
func (u *prizeUseCaseImpl) ImportCSV(ctx context.Context, r io.Reader, filename string) (int64, error) {
	rows, problems := parsePrizeCSV(r)
	if len(problems) > 0 {
		return 0, &CSVValidationError{Problems: problems}
	}
	if len(rows) == 0 {
		return 0, &CSVValidationError{Problems: []string{"file contains no prize rows"}}
	}

	var imported int64
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		codes := make([]string, len(rows))
		for i, row := range rows {
			codes[i] = row.RedemptionCode
		}
		existing, err := tx.Prizes().FindExistingCodes(ctx, codes)
		if err != nil {
			return errs.Mark(err, ErrDatabase)
		}
		if len(existing) > 0 {
			dup := make([]string, len(existing))
			for i, code := range existing {
				dup[i] = fmt.Sprintf("redemption code %q already exists", code)
			}
			return &CSVValidationError{Problems: dup}
		}

		imported, err = tx.Prizes().CreateBatch(ctx, rows)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateCode
			}
			return errs.Mark(err, ErrDatabase)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	u.auditor.Append(ctx, audit.ActionCreate, audit.EntityPrize, 0,
		fmt.Sprintf("Imported %d prizes from CSV file: %s", imported, filename))
	return imported, nil
}

func parsePrizeCSV(r io.Reader) ([]shared.PrizeSnapshot, []string) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, []string{fmt.Sprintf("malformed CSV: %v", err)}
	}
	if len(records) == 0 {
		return nil, nil
	}

	// A header row is optional; skip it when the first row matches.
	start := 0
	if strings.EqualFold(strings.TrimSpace(records[0][0]), "code") ||
		strings.EqualFold(strings.TrimSpace(records[0][0]), "redemptionCode") {
		start = 1
	}

	var (
		rows     []shared.PrizeSnapshot
		problems []string
		seen     = map[string]bool{}
	)
	for i, record := range records[start:] {
		line := start + i + 1
		if len(record) < 3 {
			problems = append(problems, fmt.Sprintf("line %d: expected code,type,amount", line))
			continue
		}
		code := strings.TrimSpace(record[0])
		typRaw := strings.TrimSpace(record[1])
		amountRaw := strings.TrimSpace(record[2])

		if code == "" {
			problems = append(problems, fmt.Sprintf("line %d: redemption code is required", line))
			continue
		}
		if seen[code] {
			problems = append(problems, fmt.Sprintf("line %d: duplicate redemption code %q in file", line, code))
			continue
		}
		seen[code] = true

		typ, err := prize.NewType(typRaw)
		if err != nil {
			problems = append(problems, fmt.Sprintf("line %d: invalid prize type %q", line, typRaw))
			continue
		}

		var amount prize.Amount
		if typ != prize.TypeRandom {
			doge, err := strconv.ParseFloat(amountRaw, 64)
			if err != nil {
				problems = append(problems, fmt.Sprintf("line %d: invalid amount %q", line, amountRaw))
				continue
			}
			amount, err = prize.NewAmountFromDoge(doge)
			if err != nil || amount.IsZero() {
				problems = append(problems, fmt.Sprintf("line %d: amount must be positive for %s prizes", line, typ))
				continue
			}
		}

		rows = append(rows, shared.PrizeSnapshot{
			RedemptionCode: code,
			Type:           typ.String(),
			AmountKoinu:    amount.Koinu(),
			Status:         prize.StatusAvailable.String(),
		})
	}
	return rows, problems
}
