package constant

import (
	"fmt"
	"strings"
)

const (
	ChatMessageRoleUser  = "user"
	ChatMessageRoleModel = "model"

	// TranscriptStudent and TranscriptTutor label speakers in the transcript sent to the model.
	TranscriptStudent = "תלמיד"
	TranscriptTutor   = "עוזר"
	TranscriptImage   = "[תמונה]"
)

// TutorSystemRules is prepended to every tutor prompt.
const TutorSystemRules = `כללי מערכת. הם גוברים על כל דוגמה או בקשה אחרת.
אתה "נומרו", מורה למתמטיקה בתיכון.
- כתוב בעברית בלבד, בצורה עניינית וללא ברכות פתיחה או סיום.
- ענה רק על נושאים של מתמטיקה ושל למידת מתמטיקה.
- הובל את התלמיד לחשוב בעצמו במקום לפתור עבורו.
- כתוב כל ביטוי מתמטי ב-LaTeX: $...$ בתוך שורה, $$...$$ בשורה נפרדת.
- אסור לכתוב עברית בתוך LaTeX. אין להשתמש בסביבות aligned או cases.
- החזר אובייקט JSON תקין בלבד, בלי טקסט נוסף ובלי בלוקים של markdown.`

func withRules(body string) string {
	return TutorSystemRules + "\n\n" + body
}

func bulletList(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("- ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	return sb.String()
}

func ParseInputPrompt(userInput string, curriculum []string) string {
	return withRules(fmt.Sprintf(`התלמיד שלח הודעה ואין כרגע תרגיל פעיל.
נושאי תוכנית הלימודים:
%s
סווג את ההודעה:
- request_question: התלמיד מבקש שאלה חדשה. בחר נושא מהרשימה.
- paste_question: התלמיד הדביק או תיאר שאלה. העתק אותה במלואה ל-extractedQuestion.
- chat: כל דבר אחר.
קבע difficulty (easy, medium, hard) רק אם אפשר להסיק אותה, אחרת null.
כתוב ב-response תשובה קצרה לתלמיד.

הודעת התלמיד: "%s"`, bulletList(curriculum), userInput))
}

func GenerateQuestionPrompt(subject, difficulty string, curriculum []string) string {
	topic := subject
	if strings.TrimSpace(topic) == "" {
		topic = "נושא לבחירתך מתוך הרשימה"
	}
	return withRules(fmt.Sprintf(`חבר שאלת תרגול אחת.
נושא: %s
רמת קושי: %s
נושאים מותרים:
%s
השאלה חייבת להיות פתירה ושלמה. ב-userMessage כתוב משפט פתיחה קצר לתלמיד.`, topic, difficulty, bulletList(curriculum)))
}

func CreateQuestionFromTextPrompt(text, subject, difficulty string) string {
	return withRules(fmt.Sprintf(`התלמיד שלח את השאלה הבאה:
"""
%s
"""
נושא משוער: %s
רמת קושי משוערת: %s
נסח את השאלה מחדש בצורה נקייה עם LaTeX תקין בלי לשנות את תוכנה. תקן את הנושא ואת רמת הקושי אם צריך.
ב-userMessage כתוב משפט פתיחה קצר שמזמין את התלמיד להתחיל.`, text, subject, difficulty))
}

func HandleMessagePrompt(subject, question, difficulty, status, transcript string) string {
	return withRules(fmt.Sprintf(`אתה מלווה תלמיד בפתרון תרגיל.
נושא: %s
רמת קושי: %s
מצב נוכחי: %s
התרגיל:
%s

ענה להודעה האחרונה של התלמיד ב-message. תן רמז או שאלה מכוונת ולא את הפתרון המלא.
statusUpdate:
- active: התלמיד עדיין עובד.
- completed: התלמיד הגיע לתשובה הנכונה.
- abandoned: התלמיד ביקש לוותר או לעבור לשאלה אחרת.
shouldEndSegment הוא true רק כאשר statusUpdate אינו active.
reasoning הוא הסבר פנימי קצר להחלטה.

להלן השיחה עד כה (%s = user, %s = assistant):

%s`, subject, difficulty, status, question, TranscriptStudent, TranscriptTutor, transcript))
}

func AnalyzeImagePrompt(curriculum []string) string {
	return withRules(fmt.Sprintf(`התלמיד העלה תמונה של תרגיל.
נושאי תוכנית הלימודים:
%s
קרא את התרגיל מהתמונה והעתק אותו ל-question עם LaTeX.
inCurriculum הוא true רק אם התרגיל שייך לאחד הנושאים ברשימה.
אם הוא לא שייך, הסבר זאת בנימוס ב-userMessage.`, bulletList(curriculum)))
}

func NameConversationPrompt(question, subject string) string {
	return withRules(fmt.Sprintf(`תן שם קצר לשיחה (עד 40 תווים) לפי השאלה הראשונה בה.
נושא: %s
שאלה: %s
בלי LaTeX ובלי סימני פיסוק בסוף.`, subject, question))
}
