package ai

const (
	// summaryFallbackRunes is the prefix length returned when the
	// provider cannot summarize.
	summaryFallbackRunes = 200

	newsPromptTemplate = `Quyidagi mavzu bo'yicha haqiqiy va dolzarb yangilik maqolasi yarating:

Mavzu: %s
Kategoriya: %s
Hudud: %s

TALABLAR:
- Haqiqiy ma'lumotlarga asoslaning
- Professional jurnalistik uslub
- O'zbek va rus tillarida
- SEO optimizatsiyasi

MUHIM: Javob faqat yaroqli JSON bo'lsin, markdown yoki kod bloklarisiz.

JSON formatda javob bering:
{
  "title_uz": "Jozibali o'zbek tilidagi sarlavha (45-55 belgi)",
  "title_ru": "Привлекательный заголовок на русском",
  "content_uz": "To'liq o'zbek tilidagi matn (300-400 so'z)",
  "content_ru": "Полный текст на русском языке",
  "meta_title": "SEO uchun meta sarlavha (60 belgigacha)",
  "meta_description": "Qisqa tavsif SEO uchun (155 belgigacha)",
  "keywords": "kalit so'zlar, vergul bilan"
}`

	channelPostPromptTemplate = `%s haqida qisqa Telegram posti yozing.

FORMAT:
- 150-250 so'z
- O'zbek tilida
- 2-3 emoji
- #uzbekistan #yangiliklar kabi hashtag
- "To'liq maqolani o'qish uchun: [link]"

Mazmun: %s`

	translationPromptTemplate = `Quyidagi o'zbek tilidagi yangilik maqolasini rus tiliga tarjima qiling:

Sarlavha: %s
Mazmun: %s

TALABLAR:
- Tabiiy rus tili
- Yangilik uslubi
- Ma'noni to'liq saqlab qolish

MUHIM: Javob faqat yaroqli JSON bo'lsin, markdown yoki kod bloklarisiz.

Javobni JSON formatida bering:
{
  "title_ru": "Rus tilidagi sarlavha",
  "content_ru": "Rus tilidagi mazmun"
}`

	summaryPromptUz = `Quyidagi matnni qisqacha xulosalang (100-150 so'z): %s`
	summaryPromptEn = `Summarize the following text briefly (100-150 words): %s`
)
