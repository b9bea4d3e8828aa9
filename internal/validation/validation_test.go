package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abubakar-88/jugjiggasha/internal/models"
)

func validSubmission() models.QuestionSubmission {
	return models.QuestionSubmission{
		Title:       "নামাজের নিয়ম সম্পর্কে জানতে চাই",
		Description: "নামাজের সঠিক নিয়ম ও শর্তসমূহ বিস্তারিতভাবে জানতে চাই।",
		CategoryID:  "3",
		UserName:    "আব্দুল্লাহ",
		UserPhone:   "01712345678",
	}
}

func TestBDPhoneValidation(t *testing.T) {
	accepted := []string{
		"01712345678",
		"+881712345678",
		"+88 171 234 5678",
		"1712345678",
		"0171234567",
	}
	for _, phone := range accepted {
		s := validSubmission()
		s.UserPhone = phone
		assert.NoError(t, Validate.Struct(s), "phone %q should pass", phone)
	}

	rejected := []string{
		"abc",
		"017123",
		"+88017123456789012",
		"01712-345678",
	}
	for _, phone := range rejected {
		s := validSubmission()
		s.UserPhone = phone
		assert.Error(t, Validate.Struct(s), "phone %q should fail", phone)
	}
}

func TestMinLengthCountsRunes(t *testing.T) {
	// Ten Bangla characters occupy thirty bytes but still satisfy min=10.
	s := validSubmission()
	s.Title = strings.Repeat("ক", 10)
	require.Len(t, s.Title, 30)
	assert.NoError(t, Validate.Struct(s))

	s.Title = strings.Repeat("ক", 9)
	assert.Error(t, Validate.Struct(s))
}

func TestQuestionMessageMapping(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*models.QuestionSubmission)
		message string
	}{
		{
			name:    "short title",
			mutate:  func(s *models.QuestionSubmission) { s.Title = "ছোট" },
			message: "প্রশ্নের শিরোনাম কমপক্ষে ১০ অক্ষরের হতে হবে",
		},
		{
			name:    "short description",
			mutate:  func(s *models.QuestionSubmission) { s.Description = "ছোট বিবরণ" },
			message: "প্রশ্নের বিস্তারিত বিবরণ কমপক্ষে ২০ অক্ষরের হতে হবে",
		},
		{
			name:    "bad phone",
			mutate:  func(s *models.QuestionSubmission) { s.UserPhone = "12345" },
			message: "দয়া করে একটি সঠিক ফোন নম্বর প্রদান করুন",
		},
		{
			name:    "bad email",
			mutate:  func(s *models.QuestionSubmission) { s.UserEmail = "not-an-email" },
			message: "দয়া করে একটি সঠিক ইমেইল ঠিকানা প্রদান করুন",
		},
		{
			name:    "missing title",
			mutate:  func(s *models.QuestionSubmission) { s.Title = "" },
			message: "দয়া করে প্রশ্নের শিরোনাম, বিস্তারিত বিবরণ, ক্যাটাগরি এবং ফোন নম্বর প্রদান করুন",
		},
		{
			name:    "missing category",
			mutate:  func(s *models.QuestionSubmission) { s.CategoryID = "" },
			message: "দয়া করে প্রশ্নের শিরোনাম, বিস্তারিত বিবরণ, ক্যাটাগরি এবং ফোন নম্বর প্রদান করুন",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validSubmission()
			tc.mutate(&s)
			err := Validate.Struct(s)
			require.Error(t, err)
			assert.Equal(t, tc.message, QuestionMessage(err))
		})
	}
}

func TestQuestionMessageNonValidatorError(t *testing.T) {
	assert.Equal(t,
		"দয়া করে প্রশ্নের শিরোনাম, বিস্তারিত বিবরণ, ক্যাটাগরি এবং ফোন নম্বর প্রদান করুন",
		QuestionMessage(assert.AnError))
}
