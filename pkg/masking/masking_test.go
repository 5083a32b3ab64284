package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMobile(t *testing.T) {
	assert.Equal(t, "XXXXXX3210", Mobile("9876543210"))
	assert.Equal(t, "321", Mobile("321"))
}

func TestPAN(t *testing.T) {
	assert.Equal(t, "XXXXX1234F", PAN("ABCDE1234F"))
}

func TestDOB(t *testing.T) {
	assert.Equal(t, "1990-XX-XX", DOB("1990-01-01"))
	assert.Equal(t, "XXXXXXXX", DOB("19900101"))
}

func TestAadhaarLast4(t *testing.T) {
	assert.Equal(t, "XXXX XXXX 9012", AadhaarLast4("123456789012"))
	assert.Equal(t, "XXXX XXXX 9012", AadhaarLast4("1234 5678 9012"))
	assert.Equal(t, "XXXX XXXX 9012", AadhaarLast4("9012"))
	assert.Equal(t, "XXXX XXXX XXXX", AadhaarLast4("12"))
}

func TestLast4(t *testing.T) {
	assert.Equal(t, "9012", Last4("123456789012"))
	assert.Equal(t, "12", Last4("12"))
}
