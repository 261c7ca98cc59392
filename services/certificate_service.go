package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	config "github.com/omarashraf/quiz_platform/configs"
	"github.com/omarashraf/quiz_platform/database"
	"github.com/omarashraf/quiz_platform/models"
	"github.com/omarashraf/quiz_platform/utils"
)

// GenerateResultCertificate renders and stores a certificate for a passed
// attempt. One certificate per attempt; reruns are no-ops.
func GenerateResultCertificate(attempt models.QuizResult) {
	if !attempt.Passed || attempt.UserID == nil {
		return
	}

	var existing models.Certificate
	if err := database.DB.Where("quiz_result_id = ?", attempt.ID).First(&existing).Error; err == nil {
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", attempt.UserID).Error; err != nil {
		log.Printf("🔥 Failed to load user for certificate: %v", err)
		return
	}
	var subject models.Subject
	if err := database.DB.First(&subject, "code = ?", attempt.SubjectCode).Error; err != nil {
		log.Printf("🔥 Failed to load subject for certificate: %v", err)
		return
	}

	title := fmt.Sprintf("%s (%s) - %.2f%%", subject.Name, attempt.Level, attempt.Percentage)

	serial, err := utils.GenerateUniqueSerialNumber(database.DB)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate serial: %v", err)
		return
	}

	htmlData, err := renderCertificateHTML(user.FullName, subject.Name, attempt, serial)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate PDF: %v", err)
		return
	}

	uploadURL, err := uploadToCloudinary(pdfBytes, attempt.UserID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload certificate to Cloudinary: %v", err)
		return
	}

	certificate := models.Certificate{
		UserID:         *attempt.UserID,
		QuizResultID:   attempt.ID,
		SerialNumber:   serial,
		Title:          title,
		CompletionDate: time.Now(),
		CertificateURL: uploadURL,
	}

	if err := database.DB.Create(&certificate).Error; err != nil {
		log.Printf("🔥 Failed to create certificate record for user %s: %v", attempt.UserID, err)
	} else {
		log.Printf("✅ Generated and uploaded certificate '%s' for user %s.", title, attempt.UserID)
	}
}

func renderCertificateHTML(userName, subjectName string, attempt models.QuizResult, serial string) (string, error) {
	tmpl, err := template.ParseFiles("templates/certificate.html")
	if err != nil {
		return "", err
	}

	data := struct {
		UserName       string
		SubjectName    string
		Level          string
		Percentage     float64
		SerialNumber   string
		CompletionDate string
	}{
		UserName:       userName,
		SubjectName:    subjectName,
		Level:          attempt.Level,
		Percentage:     attempt.Percentage,
		SerialNumber:   serial,
		CompletionDate: time.Now().Format("January 2, 2006"),
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

func uploadToCloudinary(fileBytes []byte, userID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("certificates/%s_%s", userID, uuid.New().String()),
		Folder:       "quiz_certificates",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
