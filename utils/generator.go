package utils

import (
	"math/rand"
	"time"

	"github.com/omarashraf/quiz_platform/models"
	"gorm.io/gorm"
)

const serialNumberLength = 10
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateUniqueSerialNumber produces a certificate serial that does not
// collide with any stored certificate.
func GenerateUniqueSerialNumber(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, serialNumberLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		serial := string(b)

		var certificate models.Certificate
		err := tx.Where("serial_number = ?", serial).First(&certificate).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return serial, nil
			}
			return "", err
		}
	}
}
