package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

type RecapReportData struct {
	Title            string
	SchoolName       string
	ClassLabel       string
	DateLabel        string
	Summaries        []StudentSummary
	TotalDeposits    int64
	TotalWithdrawals int64
	NetAmount        int64
}

// FormatRupiah renders integer rupiah with dot grouping for the PDF template,
// e.g. 1500000 -> "Rp 1.500.000". On-screen formatting stays with the client.
func FormatRupiah(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := fmt.Sprintf("%d", amount)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	return fmt.Sprintf("%sRp %s", sign, string(out))
}

func GenerateRecapPDF(data RecapReportData) ([]byte, error) {
	html, err := renderRecapHTML(data)
	if err != nil {
		return nil, err
	}
	return generatePDFFromHTML(html)
}

func renderRecapHTML(data RecapReportData) (string, error) {
	tmpl, err := template.New("recap_report.html").Funcs(template.FuncMap{
		"rupiah": FormatRupiah,
		"add1":   func(i int) int { return i + 1 },
	}).ParseFiles("templates/recap_report.html")
	if err != nil {
		return "", err
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}
