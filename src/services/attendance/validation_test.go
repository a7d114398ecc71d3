package attendance

import (
	"testing"

	"Backend-Elevate-012/src/apperrors"
	"Backend-Elevate-012/src/models"

	"github.com/stretchr/testify/assert"
)

func validRequest() *models.RegisterAttendeeRequest {
	return &models.RegisterAttendeeRequest{
		FirstName:       "Maria",
		LastName:        "Santos",
		HasMobileNumber: true,
		ContactNumber:   "+639123456789",
		Email:           "maria@example.com",
		SchoolName:      "Rizal High School",
		Barangay:        "San Isidro",
		City:            "Pasig",
		Gender:          models.GenderFemale,
	}
}

func TestValidateRegistration(t *testing.T) {
	t.Run("ValidFormPasses", func(t *testing.T) {
		err := ValidateRegistration(validRequest(), ContactPolicyRequiredStrict)
		assert.NoError(t, err)
	})

	t.Run("MissingRequiredFields", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*models.RegisterAttendeeRequest)
		}{
			{"FirstName", func(r *models.RegisterAttendeeRequest) { r.FirstName = "" }},
			{"LastName", func(r *models.RegisterAttendeeRequest) { r.LastName = "  " }},
			{"SchoolName", func(r *models.RegisterAttendeeRequest) { r.SchoolName = "" }},
			{"Barangay", func(r *models.RegisterAttendeeRequest) { r.Barangay = "" }},
			{"City", func(r *models.RegisterAttendeeRequest) { r.City = "" }},
			{"Gender", func(r *models.RegisterAttendeeRequest) { r.Gender = "" }},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := validRequest()
				tc.mutate(req)
				err := ValidateRegistration(req, ContactPolicyRequiredStrict)
				assert.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.KindInvalidArgument))
			})
		}
	})

	t.Run("GenderMustBeKnownValue", func(t *testing.T) {
		req := validRequest()
		req.Gender = "Other"
		err := ValidateRegistration(req, ContactPolicyRequiredStrict)
		assert.True(t, apperrors.Is(err, apperrors.KindInvalidArgument))
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		req := validRequest()
		req.Email = "not-an-email"
		err := ValidateRegistration(req, ContactPolicyRequiredStrict)
		assert.True(t, apperrors.Is(err, apperrors.KindInvalidArgument))
	})

	t.Run("EmailIsOptional", func(t *testing.T) {
		req := validRequest()
		req.Email = ""
		assert.NoError(t, ValidateRegistration(req, ContactPolicyRequiredStrict))
	})

	t.Run("InvalidBirthdayFormat", func(t *testing.T) {
		req := validRequest()
		req.Birthday = "01-02-2006"
		err := ValidateRegistration(req, ContactPolicyRequiredStrict)
		assert.True(t, apperrors.Is(err, apperrors.KindInvalidArgument))
	})
}

func TestContactNumberPolicy(t *testing.T) {
	t.Run("RequiredStrictRejectsMissingNumber", func(t *testing.T) {
		req := validRequest()
		req.ContactNumber = ""
		err := ValidateRegistration(req, ContactPolicyRequiredStrict)
		assert.Error(t, err)
		assert.Contains(t, apperrors.MessageOf(err), "Contact number is required")
	})

	t.Run("RequiredStrictRejectsBadFormat", func(t *testing.T) {
		for _, bad := range []string{"09123456789", "+63912345678", "+6391234567890", "639123456789", "+638123456789"} {
			req := validRequest()
			req.ContactNumber = bad
			err := ValidateRegistration(req, ContactPolicyRequiredStrict)
			assert.Error(t, err, "should reject %q", bad)
			assert.Contains(t, apperrors.MessageOf(err), ContactNumberFormat)
		}
	})

	t.Run("OptionalPolicyAllowsMissingNumber", func(t *testing.T) {
		// policy optional: ไม่มีเบอร์ก็ลงทะเบียนได้ ถ้าไม่ได้ติ๊กว่ามีเบอร์
		req := validRequest()
		req.HasMobileNumber = false
		req.ContactNumber = ""
		assert.NoError(t, ValidateRegistration(req, ContactPolicyOptional))
	})

	t.Run("OptionalPolicyStillRequiresNumberWhenDeclared", func(t *testing.T) {
		req := validRequest()
		req.HasMobileNumber = true
		req.ContactNumber = ""
		err := ValidateRegistration(req, ContactPolicyOptional)
		assert.Error(t, err)
	})

	t.Run("OptionalPolicyStillValidatesFormatWhenPresent", func(t *testing.T) {
		req := validRequest()
		req.HasMobileNumber = false
		req.ContactNumber = "09123456789"
		err := ValidateRegistration(req, ContactPolicyOptional)
		assert.Error(t, err)
	})
}

func TestRegexEscape(t *testing.T) {
	// คำค้นหาที่มี special character ต้องไม่ระเบิดเป็น regex จริง
	assert.Equal(t, `\+639`, regexEscape(`+639`))
	assert.Equal(t, `a\.b\*c`, regexEscape(`a.b*c`))
	assert.Equal(t, `plain`, regexEscape(`plain`))
}
