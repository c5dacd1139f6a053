package core

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"chronos-analytics/internal/store"
)

// Bank movement type values as stored on movement documents.
const (
	movementEntry       = "ingreso"
	movementExit        = "egreso"
	movementTransferIn  = "transferencia_entrada"
	movementTransferOut = "transferencia_salida"
)

// MonthlyCut is a historical net position: entries minus exits over all
// movements strictly before the cut month's end boundary.
type MonthlyCut struct {
	Month string          `json:"month"` // "2006-01"
	Net   decimal.Decimal `json:"net"`
}

// BankReport is one bank account with its stored balance, movement totals,
// and trailing monthly history.
type BankReport struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Currency       string          `json:"currency"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	TotalEntries   decimal.Decimal `json:"total_entries"`
	TotalExits     decimal.Decimal `json:"total_exits"`
	Movements      int             `json:"movements"`
	History        []MonthlyCut    `json:"history"`
}

// BanksReport consolidates all bank accounts.
type BanksReport struct {
	Banks        []BankReport    `json:"banks"`
	TotalBalance decimal.Decimal `json:"total_balance"`
	TotalEntries decimal.Decimal `json:"total_entries"`
	TotalExits   decimal.Decimal `json:"total_exits"`
	DataQuality  DataQuality     `json:"data_quality"`
}

// resolveBalance reads the stored balance, preferring the current field name
// over the legacy one.
func resolveBalance(bank store.Record) decimal.Decimal {
	return decimal.NewFromFloat(bank.NumFirst("saldoActual", "saldo"))
}

func validBank(r store.Record) bool {
	return IsValid(r["nombre"])
}

func isEntry(tipo string) bool {
	return tipo == movementEntry || tipo == movementTransferIn
}

func isExit(tipo string) bool {
	return tipo == movementExit || tipo == movementTransferOut
}

func (s *analysisService) AnalyzeBankBalances(ctx context.Context) (*BanksReport, error) {
	banks, err := s.store.FetchAll(ctx, colBanks)
	if err != nil {
		return nil, fmt.Errorf("analyze banks: %w", err)
	}
	movements, err := s.store.FetchAll(ctx, colBankMovements)
	if err != nil {
		return nil, fmt.Errorf("analyze banks: %w", err)
	}

	valid := filterRecords(banks, validBank)

	report := &BanksReport{
		DataQuality: newDataQuality(len(banks), len(valid)),
	}

	totalBalance := decimal.Zero
	totalEntries := decimal.Zero
	totalExits := decimal.Zero
	firstOfMonth := startOfMonth(s.now().UTC())

	for _, bank := range valid {
		br := BankReport{
			ID:       bank.ID(),
			Name:     bank.Str("nombre"),
			Currency: "USD",
		}

		balance := resolveBalance(bank)
		entries := decimal.Zero
		exits := decimal.Zero
		var bankMovs []store.Record
		for _, m := range movements {
			if m.Str("bancoId") != br.ID {
				continue
			}
			bankMovs = append(bankMovs, m)
			amount := decimal.NewFromFloat(m.Num("monto"))
			tipo := m.Str("tipo")
			if isEntry(tipo) {
				entries = entries.Add(amount)
			} else if isExit(tipo) {
				exits = exits.Add(amount)
			}
		}
		br.Movements = len(bankMovs)

		// Up to 3 trailing monthly cuts. Each cut nets all movements
		// strictly before the boundary; a cut with no preceding movements
		// is omitted.
		for i := 0; i < 3; i++ {
			boundary := firstOfMonth.AddDate(0, -i, 0)
			net := decimal.Zero
			seen := 0
			for _, m := range bankMovs {
				ts, ok := m.Time("fecha")
				if !ok || !ts.Before(boundary) {
					continue
				}
				seen++
				amount := decimal.NewFromFloat(m.Num("monto"))
				tipo := m.Str("tipo")
				if isEntry(tipo) {
					net = net.Add(amount)
				} else if isExit(tipo) {
					net = net.Sub(amount)
				}
			}
			if seen == 0 {
				continue
			}
			br.History = append(br.History, MonthlyCut{
				Month: boundary.AddDate(0, -1, 0).Format("2006-01"),
				Net:   Round2(net),
			})
		}

		br.CurrentBalance = Round2(balance)
		br.TotalEntries = Round2(entries)
		br.TotalExits = Round2(exits)
		report.Banks = append(report.Banks, br)

		totalBalance = totalBalance.Add(balance)
		totalEntries = totalEntries.Add(entries)
		totalExits = totalExits.Add(exits)
	}

	report.TotalBalance = Round2(totalBalance)
	report.TotalEntries = Round2(totalEntries)
	report.TotalExits = Round2(totalExits)
	return report, nil
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
