package constants

// MotivationKind classifies a motivational text
type MotivationKind string

const (
	MotivationHadith MotivationKind = "hadith"
	MotivationDua    MotivationKind = "dua"
	MotivationQuote  MotivationKind = "quote"
)

// Motivation is a short devotional text shown in rotation on the Duas tab
type Motivation struct {
	Content   string
	ContentAr string
	Source    string
	Kind      MotivationKind
}

var Motivations = []Motivation{
	{
		Content:   "When Ramadan begins, the gates of Paradise are opened, the gates of Hell are closed, and the devils are chained.",
		ContentAr: "إذا دخل رمضان فتحت أبواب الجنة، وغلقت أبواب النار، وسلسلت الشياطين.",
		Source:    "Sahih Bukhari & Muslim",
		Kind:      MotivationHadith,
	},
	{
		Content:   "Whoever fasts Ramadan out of faith and in the hope of reward, his previous sins will be forgiven.",
		ContentAr: "من صام رمضان إيماناً واحتساباً غفر له ما تقدم من ذنبه.",
		Source:    "Sahih Bukhari",
		Kind:      MotivationHadith,
	},
	{
		Content:   "The breath of the fasting person is more pleasant to Allah than the scent of musk.",
		ContentAr: "لخلوف فم الصائم أطيب عند الله من ريح المسك.",
		Source:    "Sahih Muslim",
		Kind:      MotivationHadith,
	},
	{
		Content:   "Paradise has a gate called Ar-Rayyan, through which only those who fast will enter on the Day of Resurrection.",
		ContentAr: "إن في الجنة باباً يقال له الريان، يدخل منه الصائمون يوم القيامة، لا يدخل منه أحد غيرهم.",
		Source:    "Sahih Bukhari",
		Kind:      MotivationHadith,
	},
	{
		Content:   "Every action of the son of Adam is given manifold reward, each good deed receiving ten times its like, up to seven hundred times.",
		ContentAr: "كل عمل ابن آدم يضاعف، الحسنة عشر أمثالها إلى سبعمائة ضعف.",
		Source:    "Sahih Muslim",
		Kind:      MotivationHadith,
	},
	{
		Content:   "Take Suhoor, for in Suhoor there is blessing.",
		ContentAr: "تسحروا فإن في السحور بركة.",
		Source:    "Sahih Bukhari",
		Kind:      MotivationHadith,
	},
	{
		Content:   "The best of you are those who learn the Quran and teach it.",
		ContentAr: "خيركم من تعلم القرآن وعلمه.",
		Source:    "Sahih Bukhari",
		Kind:      MotivationHadith,
	},
	{
		Content:   "Fasting is a shield; so when one of you is fasting he should not use foul or foolish talk.",
		ContentAr: "الصيام جنة، فإذا كان يوم صوم أحدكم فلا يرفث ولا يصخب.",
		Source:    "Sahih Muslim",
		Kind:      MotivationHadith,
	},
	{
		Content:   "He who provides a fasting person something with which to break his fast, will earn the same reward as the one who was observing the fast.",
		ContentAr: "من فطر صائماً كان له مثل أجره، غير أنه لا ينقص من أجر الصائم شيئاً.",
		Source:    "Tirmidhi",
		Kind:      MotivationHadith,
	},
	{
		Content:   "The thirst is gone, the veins are moistened, and the reward is confirmed, if Allah wills.",
		ContentAr: "ذهب الظمأ وابتلت العروق وثبت الأجر إن شاء الله.",
		Source:    "Abu Dawood",
		Kind:      MotivationDua,
	},
	{
		Content:   "Whoever stands in prayer during the nights of Ramadan out of faith and in the hope of reward, his previous sins will be forgiven.",
		ContentAr: "من قام رمضان إيماناً واحتساباً غفر له ما تقدم من ذنبه.",
		Source:    "Sahih Bukhari",
		Kind:      MotivationHadith,
	},
	{
		Content:   "Look for the Night of Qadr in the last ten nights of Ramadan.",
		ContentAr: "تحروا ليلة القدر في العشر الأواخر من رمضان.",
		Source:    "Sahih Bukhari",
		Kind:      MotivationHadith,
	},
}
