package notify

// Notification kinds.
const (
	KindWeeklyReminder = "weekly_reminder"
	KindWelcome        = "welcome"
	KindTest           = "test"
	KindPush           = "push"
)

// Notification is one message shown to users. The constructors below are the
// only ways to build one; each kind carries its fixed tag and route.
type Notification struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
	Tag   string `json:"tag"`
}

// WeeklyReminder is the Saturday mojlis invitation.
func WeeklyReminder() Notification {
	return Notification{
		Kind:  KindWeeklyReminder,
		Title: "সাপ্তাহিক দ্বীনী মজলিসের আমন্ত্রণ",
		Body:  "আজ শনিবার মাগরিবের পর দ্বীনী মজলিস অনুষ্ঠিত হবে। সকলকে উপস্থিত হওয়ার জন্য বিশেষ অনুরোধ।",
		URL:   "/events",
		Tag:   "weekly-mojlis",
	}
}

// Welcome greets a user right after installing the app.
func Welcome() Notification {
	return Notification{
		Kind:  KindWelcome,
		Title: "স্বাগতম! ইসলামী প্রশ্নোত্তর",
		Body:  "আপনি সফলভাবে অ্যাপটি ইন্সটল করেছেন। প্রতি শনিবার মজলিসের রিমাইন্ডার পাবেন।",
		URL:   "/",
		Tag:   "welcome",
	}
}

// Test builds a test notification; empty title or body fall back to the
// defaults the notification settings page expects.
func Test(title, body string) Notification {
	if title == "" {
		title = "পরীক্ষামূলক নোটিফিকেশন"
	}
	if body == "" {
		body = "নোটিফিকেশন সিস্টেম কাজ করছে!"
	}
	return Notification{
		Kind:  KindTest,
		Title: title,
		Body:  body,
		URL:   "/",
		Tag:   "test",
	}
}

// Push relays an externally pushed payload. A missing URL falls back to the
// home route.
func Push(title, body, url string) Notification {
	if url == "" {
		url = "/"
	}
	return Notification{
		Kind:  KindPush,
		Title: title,
		Body:  body,
		URL:   url,
		Tag:   "push-notification",
	}
}
