package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhoneFormat(t *testing.T) {
	valid := []string{
		"+998901234567",
		"998901234567",
		"123456789",       // минимальные 9 цифр
		"123456789012345", // максимальные 15 цифр
	}
	for _, phone := range valid {
		assert.True(t, phoneRe.MatchString(phone), phone)
	}

	invalid := []string{
		"",
		"12345678",         // мало цифр
		"1234567890123456", // много цифр
		"+998 90 123 45 67",
		"phone",
		"+99890123456a",
		"++998901234567",
	}
	for _, phone := range invalid {
		assert.False(t, phoneRe.MatchString(phone), phone)
	}
}
