package money

import (
	"context"
	"database/sql"
	"fmt"
	"math/big"
)

// SQLRateProvider resolves exchange rates from a database table, the
// Go equivalent of the PDO-backed table provider in spec.md §4.6. Exactly
// one of SourceColumn/SourceCode and one of TargetColumn/TargetCode must be
// set: the *Column variant binds a query parameter, the *Code variant
// fixes the lookup to a single currency.
type SQLRateProvider struct {
	DB     *sql.DB
	Table  string
	RateColumn string

	SourceColumn string
	SourceCode   string

	TargetColumn string
	TargetCode   string
}

// NewSQLRateProvider validates the column/code configuration and returns a
// ready-to-use provider.
//
// NewSQLRateProvider returns an [InvalidArgumentError] if zero or both of
// SourceColumn/SourceCode (or TargetColumn/TargetCode) are set.
func NewSQLRateProvider(db *sql.DB, table, rateColumn, sourceColumn, sourceCode, targetColumn, targetCode string) (*SQLRateProvider, error) {
	if (sourceColumn == "") == (sourceCode == "") {
		return nil, &InvalidArgumentError{Op: "NewSQLRateProvider", Msg: "exactly one of sourceColumn or sourceCode must be set"}
	}
	if (targetColumn == "") == (targetCode == "") {
		return nil, &InvalidArgumentError{Op: "NewSQLRateProvider", Msg: "exactly one of targetColumn or targetCode must be set"}
	}
	if sourceCode != "" && targetCode != "" {
		return nil, &InvalidArgumentError{Op: "NewSQLRateProvider", Msg: "source and target cannot both be fixed codes"}
	}
	return &SQLRateProvider{
		DB:           db,
		Table:        table,
		RateColumn:   rateColumn,
		SourceColumn: sourceColumn,
		SourceCode:   sourceCode,
		TargetColumn: targetColumn,
		TargetCode:   targetCode,
	}, nil
}

// Rate implements [ExchangeRateProvider], querying the configured table for
// a row matching base and quote.
func (p *SQLRateProvider) Rate(base, quote Currency) (*big.Rat, error) {
	return p.RateContext(context.Background(), base, quote)
}

// RateContext is like Rate but accepts a context for the underlying query.
func (p *SQLRateProvider) RateContext(ctx context.Context, base, quote Currency) (*big.Rat, error) {
	if p.SourceCode != "" && base.alpha != p.SourceCode {
		return nil, &CurrencyConversionError{Source: base.alpha, Target: quote.alpha, Detail: "provider is fixed to source " + p.SourceCode}
	}
	if p.TargetCode != "" && quote.alpha != p.TargetCode {
		return nil, &CurrencyConversionError{Source: base.alpha, Target: quote.alpha, Detail: "provider is fixed to target " + p.TargetCode}
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE 1=1", p.RateColumn, p.Table)
	var args []any
	if p.SourceColumn != "" {
		query += fmt.Sprintf(" AND %s = ?", p.SourceColumn)
		args = append(args, base.alpha)
	}
	if p.TargetColumn != "" {
		query += fmt.Sprintf(" AND %s = ?", p.TargetColumn)
		args = append(args, quote.alpha)
	}

	var rateStr string
	err := p.DB.QueryRowContext(ctx, query, args...).Scan(&rateStr)
	if err == sql.ErrNoRows {
		return nil, &CurrencyConversionError{Source: base.alpha, Target: quote.alpha, Detail: "no matching row"}
	}
	if err != nil {
		return nil, &CurrencyConversionError{Source: base.alpha, Target: quote.alpha, Detail: err.Error()}
	}

	r, ok := new(big.Rat).SetString(rateStr)
	if !ok {
		return nil, &NumberFormatError{Op: "SQLRateProvider.Rate", Input: rateStr}
	}
	return r, nil
}
