package attendance

import (
	"os"
	"regexp"
	"strings"

	"Backend-Elevate-012/src/apperrors"
	"Backend-Elevate-012/src/models"

	"github.com/go-playground/validator/v10"
)

// รูปแบบเบอร์มือถือฟิลิปปินส์: +639xxxxxxxxx
var contactNumberRegex = regexp.MustCompile(`^\+639\d{9}$`)

const (
	ContactNumberFormat  = "+639xxxxxxxxx"
	ContactNumberExample = "+639123456789"

	// ContactPolicy ค่าที่รองรับของ CONTACT_NUMBER_POLICY
	ContactPolicyRequiredStrict = "required-strict"
	ContactPolicyOptional       = "optional"
)

var validate = validator.New()

// ContactNumberPolicy อ่าน policy จาก ENV (ค่าเริ่มต้น required-strict)
func ContactNumberPolicy() string {
	p := os.Getenv("CONTACT_NUMBER_POLICY")
	if p == ContactPolicyOptional {
		return ContactPolicyOptional
	}
	return ContactPolicyRequiredStrict
}

// ValidateRegistration ตรวจฟอร์มลงทะเบียนทั้งหมด คืน error หมวด InvalidArgument ตัวแรกที่เจอ
func ValidateRegistration(req *models.RegisterAttendeeRequest, policy string) error {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.ContactNumber = strings.TrimSpace(req.ContactNumber)
	req.Email = strings.TrimSpace(req.Email)
	req.SchoolName = strings.TrimSpace(req.SchoolName)
	req.Barangay = strings.TrimSpace(req.Barangay)
	req.City = strings.TrimSpace(req.City)
	req.SocialMediaName = strings.TrimSpace(req.SocialMediaName)
	req.DgroupLeaderName = strings.TrimSpace(req.DgroupLeaderName)

	if err := validate.Struct(req); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			return apperrors.New(apperrors.KindInvalidArgument, fieldMessage(fieldErrs[0]))
		}
		return apperrors.New(apperrors.KindInvalidArgument, "Please fill in all required fields.")
	}

	return validateContactNumber(req, policy)
}

// validateContactNumber บังคับเบอร์ตาม policy ของ deployment
// required-strict: ทุกคนต้องมีเบอร์และรูปแบบต้องถูก
// optional: บังคับเฉพาะคนที่ตอบว่ามีเบอร์ (hasMobileNumber)
func validateContactNumber(req *models.RegisterAttendeeRequest, policy string) error {
	required := policy == ContactPolicyRequiredStrict || req.HasMobileNumber

	if req.ContactNumber == "" {
		if required {
			return apperrors.New(apperrors.KindInvalidArgument, "Contact number is required.")
		}
		return nil
	}

	if !contactNumberRegex.MatchString(req.ContactNumber) {
		return apperrors.Newf(apperrors.KindInvalidArgument,
			"Contact number must be in format %s (e.g., %s)", ContactNumberFormat, ContactNumberExample)
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "FirstName":
		return "First name is required."
	case "LastName":
		return "Last name is required."
	case "SchoolName":
		return "School name is required."
	case "Barangay":
		return "Barangay is required."
	case "City":
		return "City is required."
	case "Gender":
		return "Gender is required."
	case "Email":
		return "Please enter a valid email address."
	case "Birthday":
		return "Birthday must be in YYYY-MM-DD format."
	default:
		return "Please fill in all required fields."
	}
}
