// Package locale maps a language tag and device class to every string the
// game displays. It has no rendering dependencies.
package locale

import (
	"fmt"

	"golang.org/x/text/language"
)

// Device selects which input instructions are shown.
type Device int

const (
	DeviceDesktop Device = iota // keyboard and mouse
	DeviceTouch                 // tap and drag
)

// Text holds all display strings for one locale and device.
type Text struct {
	Tag          language.Tag
	Title        string
	Mission      string
	Instructions string
	Controls     string
	ScorePrefix  string
	TimerPrefix  string
	Good         string
	Bad          string
	Miss         string
	Start        string
	Restart      string
	Final        string
	Prev         string
	Difficulty   string
	Easy         string
	Medium       string
	Hard         string
	Paused       string
	Resume       string
	Muted        string

	instructionsF string // takes the round length in seconds
	milestones    map[int]string
	milestoneF    string
}

// defaultSeconds is the round length For formats into Instructions.
const defaultSeconds = 30

// WithDuration returns t with Instructions stating a round of the given
// length.
func (t Text) WithDuration(seconds int) Text {
	t.Instructions = fmt.Sprintf(t.instructionsF, seconds)
	return t
}

// Milestone returns the celebration message for a score threshold.
func (t Text) Milestone(threshold int) string {
	if msg, ok := t.milestones[threshold]; ok {
		return msg
	}
	return fmt.Sprintf(t.milestoneF, threshold)
}

// Timer formats the remaining-time label.
func (t Text) Timer(seconds int) string {
	return fmt.Sprintf("%s%ds", t.TimerPrefix, seconds)
}

// Score formats the score label.
func (t Text) Score(score int) string {
	return fmt.Sprintf("%s%d", t.ScorePrefix, score)
}

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.Arabic,
}

var matcher = language.NewMatcher(supported)

// Match resolves a BCP-47 tag or POSIX locale (e.g. "ar_EG.UTF-8") to a
// supported language, falling back to English.
func Match(tag string) language.Tag {
	_, idx := language.MatchStrings(matcher, posixToBCP47(tag))
	return supported[idx]
}

// For returns the display strings for a language tag and device class.
func For(tag string, device Device) Text {
	lang := Match(tag)
	var t Text
	switch lang {
	case language.Arabic:
		t = arabic(device)
	default:
		t = english(device)
	}
	t.Tag = lang
	return t.WithDuration(defaultSeconds)
}

// posixToBCP47 strips the encoding suffix and converts underscores so that
// LANG values from a shell or SSH session parse.
func posixToBCP47(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' || c == '@' {
			break
		}
		if c == '_' {
			c = '-'
		}
		out = append(out, c)
	}
	return string(out)
}

func english(device Device) Text {
	t := Text{
		Title:        "Water Drop Collector",
		Mission:      "Help collect clean water and avoid pollutants! Every drop counts for communities in need.",
		instructionsF: "How to Play: Move the bucket with ← → arrows, A/D keys, or your mouse. Catch 💧, avoid 🟤. You have %d seconds!",
		Controls:     "Controls: ← → or A/D or Mouse",
		ScorePrefix:  "Score: ",
		TimerPrefix:  "Time: ",
		Good:         "Great! +1 💧",
		Bad:          "Oops! Pollutant! -2 😬",
		Miss:         "Missed! -1",
		Start:        "Start Game",
		Restart:      "Play Again",
		Final:        "Final Score: ",
		Prev:         "Previous Score: ",
		Difficulty:   "Difficulty: ",
		Easy:         "Easy",
		Medium:       "Medium",
		Hard:         "Hard",
		Paused:       "Paused",
		Resume:       "P to resume",
		Muted:        "Sound off",
		milestones: map[int]string{
			5:  "Nice start! 5 drops collected!",
			10: "Halfway there! 10 points!",
			15: "Great job! 15 points!",
			20: "Amazing! 20 points!",
		},
		milestoneF: "Milestone! %d points!",
	}
	if device == DeviceTouch {
		t.instructionsF = "How to Play: Tap or drag on the screen to move the bucket. Catch 💧, avoid 🟤. You have %d seconds!"
		t.Controls = "Controls: Touch or drag only (keys/mouse not for mobile)"
	}
	return t
}

func arabic(device Device) Text {
	t := Text{
		Title:        "جامع قطرات الماء",
		Mission:      "ساعد في جمع الماء النظيف وتجنب الملوثات! كل قطرة مهمة للمجتمعات المحتاجة.",
		instructionsF: "كيفية اللعب: حرّك الدلو بالأسهم ← → أو بمفتاحي A/D أو بالفأرة. اجمع 💧 وتجنب 🟤. لديك %d ثانية!",
		Controls:     "التحكم: ← → أو A/D أو الفأرة",
		ScorePrefix:  "النقاط: ",
		TimerPrefix:  "الوقت: ",
		Good:         "رائع! +1 💧",
		Bad:          "أوه! ملوّث! -2 😬",
		Miss:         "فاتتك! -1",
		Start:        "ابدأ اللعبة",
		Restart:      "العب مرة أخرى",
		Final:        "النتيجة النهائية: ",
		Prev:         "النتيجة السابقة: ",
		Difficulty:   "الصعوبة: ",
		Easy:         "سهل",
		Medium:       "متوسط",
		Hard:         "صعب",
		Paused:       "متوقف مؤقتًا",
		Resume:       "اضغط P للمتابعة",
		Muted:        "الصوت مغلق",
		milestones: map[int]string{
			5:  "بداية جميلة! جمعت 5 قطرات!",
			10: "في منتصف الطريق! 10 نقاط!",
			15: "عمل رائع! 15 نقطة!",
			20: "مذهل! 20 نقطة!",
		},
		milestoneF: "إنجاز! %d نقطة!",
	}
	if device == DeviceTouch {
		t.instructionsF = "كيفية اللعب: المس الشاشة أو اسحب لتحريك الدلو. اجمع 💧 وتجنب 🟤. لديك %d ثانية!"
		t.Controls = "التحكم: اللمس أو السحب فقط (المفاتيح والفأرة غير مدعومة على الجوال)"
	}
	return t
}
