// Package pass renders PDF passes for registrations and booth bookings.
package pass

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"nexpo/internal/domain"
)

// maxImageBytes caps how much of a remote hero image is read.
const maxImageBytes = 5 << 20

type generator struct {
	httpClient  *http.Client
	logger      *slog.Logger
	frontendURL string
}

// NewGenerator returns a PassGenerator. frontendURL is the base for the
// booth-visit deep link embedded in exhibitor pass QR codes.
func NewGenerator(httpClient *http.Client, logger *slog.Logger, frontendURL string) domain.PassGenerator {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &generator{
		httpClient:  httpClient,
		logger:      logger,
		frontendURL: strings.TrimSuffix(frontendURL, "/"),
	}
}

// Ticket card dimensions in points (landscape stub with a hero image strip).
const (
	cardW = 520.0
	cardH = 240.0
	heroW = 180.0
	bodyX = 200.0
	bodyW = cardW - heroW
)

func (g *generator) ExpoPass(ctx context.Context, expo *domain.Expo, attendeeName, attendeeEmail, serial string) (*domain.Pass, error) {
	pdf := newTicketPDF()
	g.drawHeroImage(ctx, pdf, expo.ThumbnailImage)
	drawTicketPanel(pdf)

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.Text(bodyX, 44, expo.Title)

	pdf.SetTextColor(245, 197, 66)
	pdf.SetFont("Helvetica", "", 12)
	dates := fmt.Sprintf("%s - %s",
		expo.StartDate.Format("Mon Jan 2 2006"),
		expo.EndDate.Format("Mon Jan 2 2006"))
	pdf.Text(bodyX, 80, dates)

	pdf.SetTextColor(204, 204, 204)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(bodyX, 112, expo.Location)

	drawAttendeeBlock(pdf, attendeeName, attendeeEmail, serial)

	content, err := closePDF(pdf)
	if err != nil {
		return nil, fmt.Errorf("render expo pass: %w", err)
	}
	return &domain.Pass{
		Content:  content,
		FileName: fmt.Sprintf("TICKET-%s.pdf", serial),
		MIMEType: "application/pdf",
	}, nil
}

func (g *generator) SessionPass(ctx context.Context, session *domain.Session, attendeeName, attendeeEmail, serial string) (*domain.Pass, error) {
	pdf := newTicketPDF()
	g.drawHeroImage(ctx, pdf, session.BannerImage)
	drawTicketPanel(pdf)

	// Type badge.
	pdf.SetFillColor(20, 184, 166)
	pdf.Rect(bodyX, 24, 80, 20, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(bodyX+10, 38, strings.ToUpper(session.Type))

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(bodyX, 72, session.Title)

	pdf.SetTextColor(245, 197, 66)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(bodyX, 106, fmt.Sprintf("%s | %s - %s", session.Date, session.StartTime, session.EndTime))

	pdf.SetTextColor(204, 204, 204)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(bodyX, 130, session.Location)

	drawAttendeeBlock(pdf, attendeeName, attendeeEmail, serial)

	content, err := closePDF(pdf)
	if err != nil {
		return nil, fmt.Errorf("render session pass: %w", err)
	}
	return &domain.Pass{
		Content:  content,
		FileName: fmt.Sprintf("SESSION-TICKET-%s.pdf", serial),
		MIMEType: "application/pdf",
	}, nil
}

func (g *generator) BoothPass(ctx context.Context, booth *domain.Booth, exhibitor *domain.User, expo *domain.Expo) (*domain.Pass, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()

	// Light page background with a centered badge card.
	pdf.SetFillColor(243, 244, 246)
	pdf.Rect(0, 0, pageW, pageH, "F")

	const cardBW, cardBH = 400.0, 600.0
	cardX := (pageW - cardBW) / 2
	cardY := (pageH - cardBH) / 2

	pdf.SetFillColor(255, 255, 255)
	pdf.Rect(cardX, cardY, cardBW, cardBH, "F")

	// Header banner.
	pdf.SetFillColor(26, 26, 46)
	pdf.Rect(cardX, cardY, cardBW, 140, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetXY(cardX, cardY+30)
	pdf.CellFormat(cardBW, 26, strings.ToUpper(expo.Title), "", 0, "C", false, 0, "")

	pdf.SetFillColor(233, 69, 96)
	pdf.Rect(cardX+100, cardY+100, 200, 30, "F")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(cardX+100, cardY+106)
	pdf.CellFormat(200, 18, "OFFICIAL EXHIBITOR", "", 0, "C", false, 0, "")

	// Exhibitor block.
	y := cardY + 180
	pdf.SetTextColor(136, 136, 136)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(cardX, y)
	pdf.CellFormat(cardBW, 12, "EXHIBITOR NAME", "", 0, "C", false, 0, "")

	pdf.SetTextColor(26, 26, 46)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(cardX, y+15)
	pdf.CellFormat(cardBW, 24, exhibitor.Name, "", 0, "C", false, 0, "")

	pdf.SetTextColor(85, 85, 85)
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetXY(cardX, y+42)
	pdf.CellFormat(cardBW, 14, exhibitor.Email, "", 0, "C", false, 0, "")

	// Booth / location grid.
	gridY := y + 90
	pdf.SetTextColor(136, 136, 136)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(cardX+30, gridY, "BOOTH")
	pdf.Text(cardX+220, gridY, "LOCATION")

	pdf.SetTextColor(233, 69, 96)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(cardX+30, gridY+28, booth.Name)

	pdf.SetTextColor(26, 26, 46)
	pdf.SetFont("Helvetica", "", 14)
	pdf.Text(cardX+220, gridY+28, expo.Location)

	pdf.SetTextColor(136, 136, 136)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(cardX+30, gridY+60, "VALID DATES")
	pdf.SetTextColor(26, 26, 46)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(cardX+30, gridY+78, fmt.Sprintf("%s - %s",
		expo.StartDate.Format("01/02/2006"), expo.EndDate.Format("01/02/2006")))

	// QR deep link to the booth-visit check-in flow.
	link := fmt.Sprintf("%s/attendee/boothvisit/%s/%s", g.frontendURL, booth.ExpoID, booth.ID)
	qrPNG, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode booth QR: %w", err)
	}
	const qrSize = 130.0
	qrY := cardY + cardBH - 170
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("booth-qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("booth-qr", (pageW-qrSize)/2, qrY, qrSize, qrSize, false, opts, 0, "")

	pdf.SetTextColor(153, 153, 153)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(cardX, qrY+qrSize+10)
	pdf.CellFormat(cardBW, 12, "Scan this code at entry", "", 0, "C", false, 0, "")

	content, err := closePDF(pdf)
	if err != nil {
		return nil, fmt.Errorf("render booth pass: %w", err)
	}
	return &domain.Pass{
		Content:  content,
		FileName: fmt.Sprintf("EXHIBITOR-PASS-%s.pdf", booth.Name),
		MIMEType: "application/pdf",
	}, nil
}

func newTicketPDF() *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: cardW, Ht: cardH},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf
}

// drawTicketPanel paints the dark body panel to the right of the hero strip.
func drawTicketPanel(pdf *gofpdf.Fpdf) {
	pdf.SetFillColor(11, 15, 26)
	pdf.Rect(heroW, 0, bodyW, cardH, "F")
}

func drawAttendeeBlock(pdf *gofpdf.Fpdf, name, email, serial string) {
	pdf.SetTextColor(136, 136, 136)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(bodyX, 152, "ATTENDEE")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(bodyX, 170, name)

	pdf.SetTextColor(170, 170, 170)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(bodyX, 188, email)

	pdf.SetTextColor(245, 197, 66)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(bodyX, 214, fmt.Sprintf("Ticket No: %s", serial))
}

// drawHeroImage fetches the event image and draws it as the left strip.
// Any failure renders the pass without the image.
func (g *generator) drawHeroImage(ctx context.Context, pdf *gofpdf.Fpdf, imageURL string) {
	if imageURL == "" {
		return
	}
	data, imageType, err := g.fetchImage(ctx, imageURL)
	if err != nil {
		g.logger.Warn("pass hero image fetch failed, rendering without it", "url", imageURL, "err", err)
		return
	}
	opts := gofpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader("hero", opts, bytes.NewReader(data))
	pdf.ImageOptions("hero", 0, 0, heroW, cardH, false, opts, 0, "")
}

func (g *generator) fetchImage(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("image fetch returned status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, "", err
	}
	imageType := "JPG"
	switch resp.Header.Get("Content-Type") {
	case "image/png":
		imageType = "PNG"
	case "image/gif":
		imageType = "GIF"
	}
	return data, imageType, nil
}

func closePDF(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
