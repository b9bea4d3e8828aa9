// Package validation holds the shared validator instance and the Bangla
// error messages shown for form failures.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance.
var Validate *validator.Validate

// custom validation tags
const bdPhoneTag = "bd_phone"

// bdPhoneRegex accepts Bangladeshi numbers with an optional +88 or 01 prefix.
var bdPhoneRegex = regexp.MustCompile(`^(?:\+88|01)?(?:\d{9}|\d{10})$`)

func init() {
	Validate = validator.New()

	// Use JSON tag names for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = Validate.RegisterValidation(bdPhoneTag, bdPhoneValidation)
}

func bdPhoneValidation(fl validator.FieldLevel) bool {
	phone := strings.ReplaceAll(fl.Field().String(), " ", "")
	return bdPhoneRegex.MatchString(phone)
}

// Bangla messages for the ask-question form, keyed by field and tag.
var questionMessages = map[string]string{
	"title:min":          "প্রশ্নের শিরোনাম কমপক্ষে ১০ অক্ষরের হতে হবে",
	"description:min":    "প্রশ্নের বিস্তারিত বিবরণ কমপক্ষে ২০ অক্ষরের হতে হবে",
	"userPhone:bd_phone": "দয়া করে একটি সঠিক ফোন নম্বর প্রদান করুন",
	"userEmail:email":    "দয়া করে একটি সঠিক ইমেইল ঠিকানা প্রদান করুন",
}

// requiredMessage covers any missing required field, matching the combined
// message the form showed.
const requiredMessage = "দয়া করে প্রশ্নের শিরোনাম, বিস্তারিত বিবরণ, ক্যাটাগরি এবং ফোন নম্বর প্রদান করুন"

// QuestionMessage maps a validation failure on the question form to its
// user-facing Bangla message. The first violation wins.
func QuestionMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return requiredMessage
	}

	fe := errs[0]
	if fe.Tag() == "required" {
		return requiredMessage
	}
	if msg, ok := questionMessages[fe.Field()+":"+fe.Tag()]; ok {
		return msg
	}
	return requiredMessage
}
