package report

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"coopfin/internal/domain/ledger"
	domainLoan "coopfin/internal/domain/loan"
	domainMember "coopfin/internal/domain/member"
	domainTxn "coopfin/internal/domain/transaction"
)

var ErrUnknownReport = errors.New("invalid report type")

const (
	TypeTransactions = "transactions"
	TypeBalances     = "balances"
	TypeLoans        = "loans"
	TypeCollections  = "collections"

	creatorName = "Community Cooperative Finance"
	dateLayout  = "Jan 2, 2006"
)

type Usecase struct {
	members domainMember.Repository
	loans   domainLoan.Repository
	txns    domainTxn.Repository
}

func NewUsecase(members domainMember.Repository, loans domainLoan.Repository, txns domainTxn.Repository) *Usecase {
	return &Usecase{members: members, loans: loans, txns: txns}
}

// Generate builds the named workbook. The returned filename carries the
// report type and no extension path components.
func (u *Usecase) Generate(ctx context.Context, reportType string) (*excelize.File, string, error) {
	var build func(ctx context.Context, f *excelize.File) error
	switch reportType {
	case TypeTransactions:
		build = u.buildTransactions
	case TypeBalances:
		build = u.buildBalances
	case TypeLoans:
		build = u.buildLoans
	case TypeCollections:
		build = u.buildCollections
	default:
		return nil, "", ErrUnknownReport
	}

	f := excelize.NewFile()
	_ = f.SetDocProps(&excelize.DocProperties{Creator: creatorName})
	if err := build(ctx, f); err != nil {
		_ = f.Close()
		return nil, "", err
	}
	return f, fmt.Sprintf("coopfin-%s.xlsx", reportType), nil
}

// memberNames maps public member ids to display names, for the joined
// columns every report shows.
func (u *Usecase) memberNames(ctx context.Context) (map[string]string, error) {
	all, err := u.members.List(ctx, false)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(all))
	for _, m := range all {
		names[m.MemberID] = m.Name
	}
	return names, nil
}

func headerStyle(f *excelize.File, fill string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
	})
}

func moneyStyle(f *excelize.File) (int, error) {
	fmtStr := "#,##0.00"
	return f.NewStyle(&excelize.Style{CustomNumFmt: &fmtStr})
}

func setHeaders(f *excelize.File, sheet string, headers []string, widths []float64, style int) error {
	for i, h := range headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, col+"1", h); err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return err
		}
	}
	last, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last+"1", style)
}

func (u *Usecase) buildTransactions(ctx context.Context, f *excelize.File) error {
	const sheet = "Transactions"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	style, err := headerStyle(f, "4472C4")
	if err != nil {
		return err
	}
	headers := []string{"Date", "Member", "Type", "Amount (PHP)", "Description", "Recorded By"}
	widths := []float64{15, 25, 15, 15, 35, 25}
	if err := setHeaders(f, sheet, headers, widths, style); err != nil {
		return err
	}

	names, err := u.memberNames(ctx)
	if err != nil {
		return err
	}
	txns, err := u.txns.List(ctx, nil, nil)
	if err != nil {
		return err
	}

	money, err := moneyStyle(f)
	if err != nil {
		return err
	}
	for i, t := range txns {
		row := i + 2
		amount, _ := t.Amount.Float64()
		cells := []any{
			t.CreatedAt.Format(dateLayout),
			names[t.MemberID],
			string(t.Type),
			amount,
			t.Description,
			names[t.RecordedByID],
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &cells); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), money); err != nil {
			return err
		}
	}
	return nil
}

func (u *Usecase) buildBalances(ctx context.Context, f *excelize.File) error {
	const sheet = "Member Balances"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	style, err := headerStyle(f, "70AD47")
	if err != nil {
		return err
	}
	headers := []string{"Member", "Email", "Phone", "Total Deposits (PHP)", "Total Withdrawals (PHP)", "Savings Balance (PHP)"}
	widths := []float64{25, 30, 18, 20, 22, 22}
	if err := setHeaders(f, sheet, headers, widths, style); err != nil {
		return err
	}

	members, err := u.members.List(ctx, true)
	if err != nil {
		return err
	}
	money, err := moneyStyle(f)
	if err != nil {
		return err
	}

	for i, m := range members {
		txns, err := u.txns.ListByMemberID(ctx, m.MemberID)
		if err != nil {
			return err
		}
		deposits, _ := ledger.TotalDeposits(txns).Float64()
		withdrawals, _ := ledger.TotalWithdrawals(txns).Float64()
		balance, _ := ledger.SavingsBalance(txns).Float64()

		row := i + 2
		cells := []any{m.Name, m.Email, m.Phone, deposits, withdrawals, balance}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &cells); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("F%d", row), money); err != nil {
			return err
		}
	}
	return nil
}

func (u *Usecase) buildLoans(ctx context.Context, f *excelize.File) error {
	const sheet = "Loans"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	style, err := headerStyle(f, "ED7D31")
	if err != nil {
		return err
	}
	headers := []string{"Borrower", "Principal (PHP)", "Interest Rate", "Term (months)", "Total Due (PHP)", "Total Paid (PHP)", "Outstanding (PHP)", "Status", "Purpose", "Applied Date"}
	widths := []float64{25, 18, 14, 14, 18, 18, 18, 12, 30, 15}
	if err := setHeaders(f, sheet, headers, widths, style); err != nil {
		return err
	}

	names, err := u.memberNames(ctx)
	if err != nil {
		return err
	}
	loans, err := u.loans.List(ctx)
	if err != nil {
		return err
	}
	money, err := moneyStyle(f)
	if err != nil {
		return err
	}

	for i := range loans {
		l := &loans[i]
		txns, err := u.txns.ListByLoanID(ctx, l.LoanID)
		if err != nil {
			return err
		}
		principal, _ := l.Amount.Float64()
		totalDue, _ := l.TotalDue.Float64()
		totalPaid, _ := ledger.TotalPaid(l.LoanID, txns).Float64()
		outstanding, _ := ledger.Outstanding(l, txns).Float64()

		row := i + 2
		cells := []any{
			names[l.MemberID],
			principal,
			l.InterestRate.String() + "%",
			l.TermMonths,
			totalDue,
			totalPaid,
			outstanding,
			string(l.Status),
			l.Purpose,
			l.AppliedAt.Format(dateLayout),
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &cells); err != nil {
			return err
		}
		for _, col := range []string{"B", "E", "F", "G"} {
			if err := f.SetCellStyle(sheet, fmt.Sprintf("%s%d", col, row), fmt.Sprintf("%s%d", col, row), money); err != nil {
				return err
			}
		}
	}
	return nil
}

func (u *Usecase) buildCollections(ctx context.Context, f *excelize.File) error {
	const sheet = "Monthly Collections"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	style, err := headerStyle(f, "7030A0")
	if err != nil {
		return err
	}
	headers := []string{"Month", "Deposits (PHP)", "Loan Payments (PHP)", "Total Collections (PHP)", "Withdrawals (PHP)", "Loan Releases (PHP)"}
	widths := []float64{15, 18, 20, 22, 18, 20}
	if err := setHeaders(f, sheet, headers, widths, style); err != nil {
		return err
	}

	txns, err := u.txns.List(ctx, nil, nil)
	if err != nil {
		return err
	}
	money, err := moneyStyle(f)
	if err != nil {
		return err
	}

	for i, m := range ledger.MonthlyBreakdown(txns) {
		deposits, _ := m.Deposits.Float64()
		payments, _ := m.LoanPayments.Float64()
		collections, _ := m.Collections().Float64()
		withdrawals, _ := m.Withdrawals.Float64()
		releases, _ := m.LoanReleases.Float64()

		row := i + 2
		cells := []any{m.Month, deposits, payments, collections, withdrawals, releases}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &cells); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("F%d", row), money); err != nil {
			return err
		}
	}
	return nil
}

var reUnsafeName = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Statement renders one member's statement workbook.
func (u *Usecase) Statement(ctx context.Context, memberID string, now time.Time) (*excelize.File, string, error) {
	m, err := u.members.GetByMemberID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", domainMember.ErrNotFound
		}
		return nil, "", err
	}
	txns, err := u.txns.ListByMemberID(ctx, memberID)
	if err != nil {
		return nil, "", err
	}
	names, err := u.memberNames(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	_ = f.SetDocProps(&excelize.DocProperties{Creator: creatorName})
	const sheet = "Statement"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		_ = f.Close()
		return nil, "", err
	}
	if err := writeStatement(f, sheet, m, txns, names, now); err != nil {
		_ = f.Close()
		return nil, "", err
	}

	safe := strings.ToLower(strings.Trim(reUnsafeName.ReplaceAllString(m.Name, "-"), "-"))
	filename := fmt.Sprintf("statement-%s-%s.xlsx", safe, now.Format("2006-01-02"))
	return f, filename, nil
}

func writeStatement(f *excelize.File, sheet string, m *domainMember.Member, txns []domainTxn.Transaction, names map[string]string, now time.Time) error {
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	subStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10, Color: "6B7280"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	for _, merge := range []string{"A1:E1", "A2:E2", "A3:E3", "A4:E4"} {
		parts := strings.SplitN(merge, ":", 2)
		if err := f.MergeCell(sheet, parts[0], parts[1]); err != nil {
			return err
		}
	}
	_ = f.SetCellValue(sheet, "A1", "Member Statement")
	_ = f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	_ = f.SetCellValue(sheet, "A2", m.Name)
	_ = f.SetCellValue(sheet, "A3", fmt.Sprintf("%s | %s | %s", m.Email, m.Phone, m.Address))
	_ = f.SetCellStyle(sheet, "A3", "A3", subStyle)
	_ = f.SetCellValue(sheet, "A4", "Statement generated on "+now.Format("January 2, 2006"))
	_ = f.SetCellStyle(sheet, "A4", "A4", subStyle)

	peso := "₱#,##0.00"
	pesoStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 10}, CustomNumFmt: &peso})
	if err != nil {
		return err
	}

	savings, _ := ledger.SavingsBalance(txns).Float64()
	deposits, _ := ledger.TotalDeposits(txns).Float64()
	_ = f.SetCellValue(sheet, "A6", "Savings Balance")
	_ = f.SetCellValue(sheet, "B6", savings)
	_ = f.SetCellStyle(sheet, "B6", "B6", pesoStyle)
	_ = f.SetCellValue(sheet, "C6", "Total Deposits")
	_ = f.SetCellValue(sheet, "D6", deposits)
	_ = f.SetCellStyle(sheet, "D6", "D6", pesoStyle)

	headStyle, err := headerStyle(f, "1F2937")
	if err != nil {
		return err
	}
	headers := []string{"Date", "Type", "Description", "Amount (PHP)", "Recorded By"}
	widths := []float64{18, 16, 40, 18, 22}
	for i, h := range headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("%s8", col), h); err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheet, "A8", "E8", headStyle); err != nil {
		return err
	}

	money, err := moneyStyle(f)
	if err != nil {
		return err
	}
	for i, t := range txns {
		row := 9 + i
		amount, _ := t.Amount.Float64()
		cells := []any{
			t.CreatedAt.Format(dateLayout),
			t.Type.Label(),
			t.Description,
			amount,
			names[t.RecordedByID],
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &cells); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), money); err != nil {
			return err
		}
	}

	footer := 9 + len(txns) + 1
	_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", footer), "Total Transactions:")
	_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", footer), len(txns))
	return nil
}
