package services

import (
	"fmt"
	"strings"

	"swasthyaguide-backend/models"
)

// ResponseComposer renders dialogue intents into user-facing text in the
// detected language. It performs no classification of its own; when a
// language has no template for a message type it falls back to English.
type ResponseComposer struct{}

func NewResponseComposer() *ResponseComposer {
	return &ResponseComposer{}
}

func pick(templates map[models.Language]string, lang models.Language) string {
	if text, ok := templates[lang]; ok {
		return text
	}
	return templates[models.LanguageEnglish]
}

// ---------- general prompts ----------

var greetingTemplates = map[models.Language]string{
	models.LanguageEnglish: "🙏 Welcome to SwasthyaGuide! I can help you with health guidance and finding nearby clinics. Please tell me your symptoms, for example: \"I have fever\".",
	models.LanguageHindi:   "🙏 SwasthyaGuide में आपका स्वागत है! मैं स्वास्थ्य सलाह और आस-पास के क्लिनिक खोजने में आपकी मदद कर सकता हूँ। कृपया अपने लक्षण बताएं, जैसे: \"मुझे बुखार है\"।",
	models.LanguageHinglish: "🙏 SwasthyaGuide mein aapka swagat hai! Main health guidance aur paas ke clinic dhoondhne mein madad kar sakta hoon. Kripya apne lakshan bataiye, jaise: \"mujhe bukhar hai\".",
}

var askMessageTemplates = map[models.Language]string{
	models.LanguageEnglish:  "Please send your message — describe your symptoms or share your location for nearby clinics.",
	models.LanguageHindi:    "कृपया अपना संदेश भेजें — अपने लक्षण बताएं या आस-पास के क्लिनिक के लिए अपना स्थान भेजें।",
	models.LanguageHinglish: "Kripya apna message bhejein — apne lakshan bataiye ya paas ke clinic ke liye apna location bhejein.",
}

var generalTipsTemplates = map[models.Language]string{
	models.LanguageEnglish:  "💡 General health tips:\n• Drink clean water and stay hydrated\n• Eat fresh, home-cooked food\n• Sleep 7-8 hours daily\n• Wash hands before meals\n\nTell me your symptoms and I can guide you further.",
	models.LanguageHindi:    "💡 सामान्य स्वास्थ्य सुझाव:\n• साफ पानी पिएं और शरीर में पानी की कमी न होने दें\n• ताजा घर का खाना खाएं\n• रोज 7-8 घंटे सोएं\n• खाने से पहले हाथ धोएं\n\nअपने लक्षण बताएं, मैं आगे मदद करूंगा।",
	models.LanguageHinglish: "💡 General health tips:\n• Saaf paani piyein aur hydrated rahein\n• Taaza ghar ka khana khayein\n• Roz 7-8 ghante soyein\n• Khane se pehle haath dhoyein\n\nApne lakshan bataiye, main aage madad karunga.",
}

// ---------- emergency ----------

var emergencyTemplates = map[models.Language]string{
	models.LanguageEnglish:  "🚨 THIS SOUNDS LIKE AN EMERGENCY!\n\nPlease do NOT wait. Call an ambulance (dial 108) or go to the nearest hospital emergency room RIGHT NOW. If someone is with you, ask them to take you immediately.\n\nThis assistant cannot treat emergencies — only a doctor can.",
	models.LanguageHindi:    "🚨 यह एक आपातकालीन स्थिति लगती है!\n\nकृपया इंतजार न करें। तुरंत एम्बुलेंस बुलाएं (108 डायल करें) या नजदीकी अस्पताल की इमरजेंसी में जाएं। अगर कोई आपके साथ है तो उनसे तुरंत ले जाने को कहें।\n\nयह सहायक आपातकालीन इलाज नहीं कर सकता — केवल डॉक्टर ही कर सकते हैं।",
	models.LanguageHinglish: "🚨 Yeh EMERGENCY lag rahi hai!\n\nKripya intezaar na karein. Turant ambulance bulayein (108 dial karein) ya nazdeeki hospital ki emergency mein jayein. Agar koi aapke saath hai toh unse turant le jaane ko kahein.\n\nYeh assistant emergency ka ilaj nahi kar sakta — sirf doctor kar sakte hain.",
}

// ---------- location prompts ----------

var askLocationTemplates = map[models.Language]string{
	models.LanguageEnglish:  "📍 To find clinics near you, please send your area name or 6-digit pincode (for example: \"Gomti Nagar\" or \"226010\").",
	models.LanguageHindi:    "📍 आपके पास के क्लिनिक खोजने के लिए, कृपया अपने इलाके का नाम या 6 अंकों का पिनकोड भेजें (जैसे: \"गोमती नगर\" या \"226010\")।",
	models.LanguageHinglish: "📍 Aapke paas ke clinic dhoondhne ke liye, kripya apne area ka naam ya 6-digit pincode bhejein (jaise: \"Gomti Nagar\" ya \"226010\").",
}

var locationRetryTemplates = map[models.Language]string{
	models.LanguageEnglish:  "I couldn't identify that location. Please send just your area name or 6-digit pincode, for example: \"Hazratganj\" or \"226001\".",
	models.LanguageHindi:    "मैं वह स्थान समझ नहीं पाया। कृपया केवल अपने इलाके का नाम या 6 अंकों का पिनकोड भेजें, जैसे: \"हजरतगंज\" या \"226001\"।",
	models.LanguageHinglish: "Main woh location samajh nahi paya. Kripya sirf apne area ka naam ya 6-digit pincode bhejein, jaise: \"Hazratganj\" ya \"226001\".",
}

var noClinicsTemplates = map[models.Language]string{
	models.LanguageEnglish:  "😔 Sorry, I couldn't find clinics for \"%s\". Try a broader area or city name, like \"Gomti Nagar\" or \"Lucknow\".",
	models.LanguageHindi:    "😔 माफ कीजिए, \"%s\" के लिए कोई क्लिनिक नहीं मिला। कोई बड़ा इलाका या शहर का नाम भेजें, जैसे \"गोमती नगर\" या \"लखनऊ\"।",
	models.LanguageHinglish: "😔 Maaf kijiye, \"%s\" ke liye koi clinic nahi mila. Koi bada area ya sheher ka naam bhejein, jaise \"Gomti Nagar\" ya \"Lucknow\".",
}

var clinicsHeaderTemplates = map[models.Language]string{
	models.LanguageEnglish:  "🏥 Clinics near %s:",
	models.LanguageHindi:    "🏥 %s के पास के क्लिनिक:",
	models.LanguageHinglish: "🏥 %s ke paas ke clinic:",
}

var clinicsFooterTemplates = map[models.Language]string{
	models.LanguageEnglish:  "Get well soon! Send new symptoms anytime for more guidance.",
	models.LanguageHindi:    "जल्दी स्वस्थ हों! और सलाह के लिए कभी भी अपने लक्षण भेजें।",
	models.LanguageHinglish: "Jaldi theek ho jaiye! Aur guidance ke liye kabhi bhi apne lakshan bhejein.",
}

// ---------- symptom confirmation / follow-up ----------

var symptomsNotedTemplates = map[models.Language]string{
	models.LanguageEnglish:  "✅ Noted, I've recorded: %s.",
	models.LanguageHindi:    "✅ ठीक है, मैंने दर्ज किया: %s।",
	models.LanguageHinglish: "✅ Theek hai, maine note kiya: %s.",
}

var offerClinicsTemplates = map[models.Language]string{
	models.LanguageEnglish:  "Would you like me to find clinics near you for this? Reply \"yes\" to continue.",
	models.LanguageHindi:    "क्या आप इसके लिए आस-पास के क्लिनिक देखना चाहेंगे? जारी रखने के लिए \"haan\" भेजें।",
	models.LanguageHinglish: "Kya aap iske liye paas ke clinic dekhna chahenge? Continue karne ke liye \"haan\" bhejein.",
}

// ---------- per-symptom names and guidance ----------

var symptomNames = map[models.SymptomTag]map[models.Language]string{
	models.SymptomFever:       {models.LanguageEnglish: "fever", models.LanguageHindi: "बुखार", models.LanguageHinglish: "bukhar"},
	models.SymptomHeadache:    {models.LanguageEnglish: "headache", models.LanguageHindi: "सिरदर्द", models.LanguageHinglish: "sir dard"},
	models.SymptomCold:        {models.LanguageEnglish: "cold", models.LanguageHindi: "जुकाम", models.LanguageHinglish: "zukam"},
	models.SymptomCough:       {models.LanguageEnglish: "cough", models.LanguageHindi: "खांसी", models.LanguageHinglish: "khansi"},
	models.SymptomStomachPain: {models.LanguageEnglish: "stomach pain", models.LanguageHindi: "पेट दर्द", models.LanguageHinglish: "pet dard"},
	models.SymptomBodyAche:    {models.LanguageEnglish: "body ache", models.LanguageHindi: "बदन दर्द", models.LanguageHinglish: "badan dard"},
	models.SymptomSoreThroat:  {models.LanguageEnglish: "sore throat", models.LanguageHindi: "गले में दर्द", models.LanguageHinglish: "gale mein dard"},
	models.SymptomVomiting:    {models.LanguageEnglish: "vomiting", models.LanguageHindi: "उल्टी", models.LanguageHinglish: "ulti"},
	models.SymptomDiarrhea:    {models.LanguageEnglish: "loose motions", models.LanguageHindi: "दस्त", models.LanguageHinglish: "dast"},
	models.SymptomWeakness:    {models.LanguageEnglish: "weakness", models.LanguageHindi: "कमजोरी", models.LanguageHinglish: "kamzori"},
	models.SymptomSkinRash:    {models.LanguageEnglish: "skin rash", models.LanguageHindi: "त्वचा पर दाने", models.LanguageHinglish: "skin rash"},
}

var symptomGuidance = map[models.SymptomTag]map[models.Language]string{
	models.SymptomFever: {
		models.LanguageEnglish:  "🌡️ About fever:\n• Rest and drink plenty of fluids\n• Take paracetamol if temperature is above 100°F\n• Use a cold compress on the forehead\n\nWhen to see a doctor: fever above 103°F, lasting more than 3 days, or with rash/stiff neck.",
		models.LanguageHindi:    "🌡️ बुखार के लिए:\n• आराम करें और खूब तरल पदार्थ पिएं\n• 100°F से ऊपर बुखार हो तो पैरासिटामोल लें\n• माथे पर ठंडी पट्टी रखें\n\nडॉक्टर को कब दिखाएं: 103°F से ऊपर बुखार, 3 दिन से ज्यादा रहे, या दाने/गर्दन में अकड़न हो।",
		models.LanguageHinglish: "🌡️ Bukhar ke liye:\n• Aaram karein aur khoob paani piyein\n• 100°F se upar bukhar ho toh paracetamol lein\n• Maathe par thandi patti rakhein\n\nDoctor ko kab dikhaayein: 103°F se upar bukhar, 3 din se zyada rahe, ya daane/gardan mein akdan ho.",
	},
	models.SymptomHeadache: {
		models.LanguageEnglish:  "🤕 About headache:\n• Rest in a quiet, dark room\n• Drink water — dehydration is a common cause\n• A light head massage may help\n\nWhen to see a doctor: sudden severe headache, headache with fever and stiff neck, or after a head injury.",
		models.LanguageHindi:    "🤕 सिरदर्द के लिए:\n• शांत, अंधेरे कमरे में आराम करें\n• पानी पिएं — पानी की कमी आम कारण है\n• हल्की सिर की मालिश मदद कर सकती है\n\nडॉक्टर को कब दिखाएं: अचानक तेज सिरदर्द, बुखार और गर्दन की अकड़न के साथ, या सिर में चोट के बाद।",
		models.LanguageHinglish: "🤕 Sir dard ke liye:\n• Shaant, andhere kamre mein aaram karein\n• Paani piyein — paani ki kami aam wajah hai\n• Halki sir ki maalish madad kar sakti hai\n\nDoctor ko kab dikhaayein: achanak tez sir dard, bukhar aur gardan ki akdan ke saath, ya sir mein chot ke baad.",
	},
	models.SymptomCold: {
		models.LanguageEnglish:  "🤧 About cold:\n• Drink warm fluids like soup and ginger tea\n• Inhale steam twice a day\n• Rest well and avoid cold drinks\n\nWhen to see a doctor: breathlessness, symptoms beyond 10 days, or high fever.",
		models.LanguageHindi:    "🤧 जुकाम के लिए:\n• गर्म तरल पदार्थ जैसे सूप और अदरक की चाय पिएं\n• दिन में दो बार भाप लें\n• अच्छा आराम करें और ठंडे पेय से बचें\n\nडॉक्टर को कब दिखाएं: सांस फूलना, 10 दिन से ज्यादा लक्षण, या तेज बुखार।",
		models.LanguageHinglish: "🤧 Zukam ke liye:\n• Garam cheezein jaise soup aur adrak ki chai piyein\n• Din mein do baar bhaap lein\n• Accha aaram karein aur thandi cheezon se bachein\n\nDoctor ko kab dikhaayein: saans phoolna, 10 din se zyada lakshan, ya tez bukhar.",
	},
	models.SymptomCough: {
		models.LanguageEnglish:  "😮‍💨 About cough:\n• Warm water with honey and ginger helps\n• Avoid cold and oily food\n• Gargle with warm salt water\n\nWhen to see a doctor: cough beyond 2 weeks, blood in sputum, or chest pain while coughing.",
		models.LanguageHindi:    "😮‍💨 खांसी के लिए:\n• शहद और अदरक के साथ गर्म पानी मदद करता है\n• ठंडा और तला हुआ खाना न खाएं\n• गर्म नमक के पानी से गरारे करें\n\nडॉक्टर को कब दिखाएं: 2 हफ्ते से ज्यादा खांसी, बलगम में खून, या खांसते समय सीने में दर्द।",
		models.LanguageHinglish: "😮‍💨 Khansi ke liye:\n• Shahad aur adrak ke saath garam paani madad karta hai\n• Thanda aur tala hua khana na khayein\n• Garam namak ke paani se gargle karein\n\nDoctor ko kab dikhaayein: 2 hafte se zyada khansi, balgam mein khoon, ya khanste samay seene mein dard.",
	},
	models.SymptomStomachPain: {
		models.LanguageEnglish:  "😣 About stomach pain:\n• Eat light food like khichdi and curd\n• Sip warm water through the day\n• Avoid spicy and outside food\n\nWhen to see a doctor: severe or persistent pain, vomiting with pain, or blood in stool.",
		models.LanguageHindi:    "😣 पेट दर्द के लिए:\n• हल्का खाना जैसे खिचड़ी और दही खाएं\n• दिन भर गुनगुना पानी पिएं\n• मसालेदार और बाहर का खाना न खाएं\n\nडॉक्टर को कब दिखाएं: तेज या लगातार दर्द, दर्द के साथ उल्टी, या मल में खून।",
		models.LanguageHinglish: "😣 Pet dard ke liye:\n• Halka khana jaise khichdi aur dahi khayein\n• Din bhar gungunaa paani piyein\n• Masaledar aur bahar ka khana na khayein\n\nDoctor ko kab dikhaayein: tez ya lagataar dard, dard ke saath ulti, ya mal mein khoon.",
	},
	models.SymptomBodyAche: {
		models.LanguageEnglish:  "💪 About body ache:\n• Rest and gentle stretching help\n• A warm bath relaxes the muscles\n• Stay hydrated\n\nWhen to see a doctor: ache with high fever, or pain that keeps you from daily activities.",
		models.LanguageHindi:    "💪 बदन दर्द के लिए:\n• आराम और हल्की स्ट्रेचिंग मदद करती है\n• गर्म पानी से नहाने से मांसपेशियां आराम पाती हैं\n• पानी पीते रहें\n\nडॉक्टर को कब दिखाएं: तेज बुखार के साथ दर्द, या ऐसा दर्द जो रोज के काम में बाधा डाले।",
		models.LanguageHinglish: "💪 Badan dard ke liye:\n• Aaram aur halki stretching madad karti hai\n• Garam paani se nahane se muscles ko aaram milta hai\n• Paani peete rahein\n\nDoctor ko kab dikhaayein: tez bukhar ke saath dard, ya aisa dard jo roz ke kaam mein rukawat daale.",
	},
	models.SymptomSoreThroat: {
		models.LanguageEnglish:  "😷 About sore throat:\n• Gargle with warm salt water 3-4 times a day\n• Drink warm water with honey\n• Avoid cold drinks and ice cream\n\nWhen to see a doctor: difficulty swallowing, throat pain beyond a week, or white patches on the throat.",
		models.LanguageHindi:    "😷 गले में दर्द के लिए:\n• दिन में 3-4 बार गर्म नमक के पानी से गरारे करें\n• शहद के साथ गर्म पानी पिएं\n• ठंडे पेय और आइसक्रीम से बचें\n\nडॉक्टर को कब दिखाएं: निगलने में कठिनाई, एक हफ्ते से ज्यादा दर्द, या गले में सफेद धब्बे।",
		models.LanguageHinglish: "😷 Gale mein dard ke liye:\n• Din mein 3-4 baar garam namak ke paani se gargle karein\n• Shahad ke saath garam paani piyein\n• Thande drinks aur ice cream se bachein\n\nDoctor ko kab dikhaayein: nigalne mein dikkat, ek hafte se zyada dard, ya gale mein safed dhabbe.",
	},
	models.SymptomVomiting: {
		models.LanguageEnglish:  "🤢 About vomiting:\n• Take small sips of ORS or salted water\n• Avoid solid food for a few hours\n• Rest and avoid strong smells\n\nWhen to see a doctor: vomiting beyond a day, signs of dehydration, or blood in vomit.",
		models.LanguageHindi:    "🤢 उल्टी के लिए:\n• ORS या नमक-चीनी का पानी थोड़ा-थोड़ा पिएं\n• कुछ घंटे ठोस खाना न खाएं\n• आराम करें और तेज गंध से बचें\n\nडॉक्टर को कब दिखाएं: एक दिन से ज्यादा उल्टी, पानी की कमी के लक्षण, या उल्टी में खून।",
		models.LanguageHinglish: "🤢 Ulti ke liye:\n• ORS ya namak-cheeni ka paani thoda-thoda piyein\n• Kuch ghante solid khana na khayein\n• Aaram karein aur tez gandh se bachein\n\nDoctor ko kab dikhaayein: ek din se zyada ulti, paani ki kami ke lakshan, ya ulti mein khoon.",
	},
	models.SymptomDiarrhea: {
		models.LanguageEnglish:  "🚻 About loose motions:\n• Drink ORS after every loose motion\n• Eat banana, rice, and curd\n• Avoid milk and oily food\n\nWhen to see a doctor: more than 6 motions a day, blood in stool, or signs of dehydration (very little urine, dizziness).",
		models.LanguageHindi:    "🚻 दस्त के लिए:\n• हर दस्त के बाद ORS पिएं\n• केला, चावल और दही खाएं\n• दूध और तला हुआ खाना न लें\n\nडॉक्टर को कब दिखाएं: दिन में 6 से ज्यादा दस्त, मल में खून, या पानी की कमी के लक्षण (बहुत कम पेशाब, चक्कर)।",
		models.LanguageHinglish: "🚻 Dast ke liye:\n• Har dast ke baad ORS piyein\n• Kela, chawal aur dahi khayein\n• Doodh aur tala hua khana na lein\n\nDoctor ko kab dikhaayein: din mein 6 se zyada dast, mal mein khoon, ya paani ki kami ke lakshan (bahut kam peshab, chakkar).",
	},
	models.SymptomWeakness: {
		models.LanguageEnglish:  "😴 About weakness:\n• Eat regular, balanced meals\n• Drink plenty of fluids\n• Sleep 7-8 hours\n\nWhen to see a doctor: weakness beyond a week, with fever, or sudden weakness on one side of the body (emergency).",
		models.LanguageHindi:    "😴 कमजोरी के लिए:\n• नियमित, संतुलित भोजन करें\n• खूब तरल पदार्थ पिएं\n• 7-8 घंटे सोएं\n\nडॉक्टर को कब दिखाएं: एक हफ्ते से ज्यादा कमजोरी, बुखार के साथ, या शरीर के एक तरफ अचानक कमजोरी (आपातकाल)।",
		models.LanguageHinglish: "😴 Kamzori ke liye:\n• Regular, santulit khana khayein\n• Khoob paani piyein\n• 7-8 ghante soyein\n\nDoctor ko kab dikhaayein: ek hafte se zyada kamzori, bukhar ke saath, ya shareer ke ek taraf achanak kamzori (emergency).",
	},
	models.SymptomSkinRash: {
		models.LanguageEnglish:  "🩹 About skin rash:\n• Keep the area clean and dry\n• Do not scratch; apply calamine lotion\n• Wear loose cotton clothes\n\nWhen to see a doctor: spreading rash, rash with fever, or severe itching that disturbs sleep.",
		models.LanguageHindi:    "🩹 त्वचा के दानों के लिए:\n• प्रभावित जगह को साफ और सूखा रखें\n• खुजलाएं नहीं; कैलामाइन लोशन लगाएं\n• ढीले सूती कपड़े पहनें\n\nडॉक्टर को कब दिखाएं: फैलते दाने, बुखार के साथ दाने, या इतनी खुजली कि नींद में बाधा हो।",
		models.LanguageHinglish: "🩹 Skin rash ke liye:\n• Affected jagah ko saaf aur sookha rakhein\n• Khujlayein nahi; calamine lotion lagayein\n• Dheele cotton kapde pehnein\n\nDoctor ko kab dikhaayein: failte daane, bukhar ke saath daane, ya itni khujli ki neend mein rukawat ho.",
	},
}

// ---------- image / voice ----------

var imageAdviceTemplates = map[models.Language]string{
	models.LanguageEnglish:  "📷 I looked at your photo. It appears to show: %s (confidence %.0f%%).\n\nThis is NOT a diagnosis. Please show the affected area to a doctor, especially if it is spreading, painful, or with fever.",
	models.LanguageHindi:    "📷 मैंने आपकी फोटो देखी। इसमें यह दिख रहा है: %s (विश्वास %.0f%%)।\n\nयह निदान नहीं है। कृपया प्रभावित जगह डॉक्टर को दिखाएं, खासकर अगर यह फैल रही हो, दर्द हो, या बुखार के साथ हो।",
	models.LanguageHinglish: "📷 Maine aapki photo dekhi. Ismein yeh dikh raha hai: %s (confidence %.0f%%).\n\nYeh diagnosis NAHI hai. Kripya affected jagah doctor ko dikhaayein, khaaskar agar yeh fail rahi ho, dard ho, ya bukhar ke saath ho.",
}

var imageUnreadableTemplates = map[models.Language]string{
	models.LanguageEnglish:  "📷 Sorry, I couldn't analyze that image. Please send a clear, well-lit photo, or describe the problem in words.",
	models.LanguageHindi:    "📷 माफ कीजिए, मैं वह फोटो समझ नहीं पाया। कृपया साफ, अच्छी रोशनी वाली फोटो भेजें, या समस्या शब्दों में बताएं।",
	models.LanguageHinglish: "📷 Maaf kijiye, main woh photo samajh nahi paya. Kripya saaf, acchi roshni wali photo bhejein, ya problem shabdon mein bataiye.",
}

var voiceUnreadableTemplates = map[models.Language]string{
	models.LanguageEnglish:  "🎤 Sorry, I couldn't understand that voice message. Please type your message instead.",
	models.LanguageHindi:    "🎤 माफ कीजिए, मैं वह आवाज संदेश समझ नहीं पाया। कृपया अपना संदेश लिखकर भेजें।",
	models.LanguageHinglish: "🎤 Maaf kijiye, main woh voice message samajh nahi paya. Kripya apna message likh kar bhejein.",
}

// ---------- composer methods ----------

func (c *ResponseComposer) Greeting(lang models.Language) string {
	return pick(greetingTemplates, lang)
}

func (c *ResponseComposer) AskForMessage(lang models.Language) string {
	return pick(askMessageTemplates, lang)
}

func (c *ResponseComposer) GeneralTips(lang models.Language) string {
	return pick(generalTipsTemplates, lang)
}

// Emergency responses always include the urgent-care directive and are never
// suppressed regardless of other session state.
func (c *ResponseComposer) Emergency(lang models.Language) string {
	return pick(emergencyTemplates, lang)
}

func (c *ResponseComposer) AskLocation(lang models.Language) string {
	return pick(askLocationTemplates, lang)
}

func (c *ResponseComposer) LocationRetry(lang models.Language) string {
	return pick(locationRetryTemplates, lang)
}

func (c *ResponseComposer) NoClinics(lang models.Language, query string) string {
	return fmt.Sprintf(pick(noClinicsTemplates, lang), query)
}

// SymptomGuidance renders the per-symptom care text for every accumulated
// tag, in insertion order.
func (c *ResponseComposer) SymptomGuidance(lang models.Language, tags []models.SymptomTag) string {
	if len(tags) == 0 {
		return c.GeneralTips(lang)
	}
	sections := make([]string, 0, len(tags))
	for _, tag := range tags {
		if guidance, ok := symptomGuidance[tag]; ok {
			sections = append(sections, pick(guidance, lang))
		}
	}
	return strings.Join(sections, "\n\n")
}

// GuidanceWithLocationPrompt is the first-symptom reply: care guidance for
// the newly reported symptoms followed by the location prompt.
func (c *ResponseComposer) GuidanceWithLocationPrompt(lang models.Language, tags []models.SymptomTag) string {
	return c.SymptomGuidance(lang, tags) + "\n\n" + c.AskLocation(lang)
}

// ReconfirmSymptoms acknowledges symptoms reported while a location is still
// pending, then repeats the location prompt. It must never read like a
// failed location parse.
func (c *ResponseComposer) ReconfirmSymptoms(lang models.Language, tags []models.SymptomTag) string {
	noted := fmt.Sprintf(pick(symptomsNotedTemplates, lang), c.SymptomList(lang, tags))
	return noted + "\n\n" + c.AskLocation(lang)
}

// OfferClinics follows guidance for already-known symptoms with a yes/no
// clinic offer.
func (c *ResponseComposer) OfferClinics(lang models.Language, tags []models.SymptomTag) string {
	return c.SymptomGuidance(lang, tags) + "\n\n" + pick(offerClinicsTemplates, lang)
}

// ClinicResults renders an ordered clinic list for a resolved location.
func (c *ResponseComposer) ClinicResults(lang models.Language, locationLabel string, clinics []models.Clinic) string {
	var b strings.Builder
	fmt.Fprintf(&b, pick(clinicsHeaderTemplates, lang), locationLabel)
	b.WriteString("\n")

	limit := len(clinics)
	if limit > 5 {
		limit = 5
	}
	for i := 0; i < limit; i++ {
		clinic := clinics[i]
		fmt.Fprintf(&b, "\n%d. %s\n   📍 %s\n", i+1, clinic.Name, clinic.Address)
		if clinic.Timing != "" {
			fmt.Fprintf(&b, "   🕐 %s\n", clinic.Timing)
		}
		if clinic.Phone != "" {
			fmt.Fprintf(&b, "   📞 %s\n", clinic.Phone)
		}
		if clinic.Fees != "" {
			fmt.Fprintf(&b, "   💰 %s\n", clinic.Fees)
		}
		if len(clinic.Specialties) > 0 {
			fmt.Fprintf(&b, "   🩺 %s\n", strings.Join(clinic.Specialties, ", "))
		}
	}

	b.WriteString("\n")
	b.WriteString(pick(clinicsFooterTemplates, lang))
	return b.String()
}

// ImageAdvice renders the external image-analysis result.
func (c *ResponseComposer) ImageAdvice(lang models.Language, analysis *models.ImageAnalysis) string {
	if analysis == nil || analysis.Condition == "" {
		return pick(imageUnreadableTemplates, lang)
	}
	return fmt.Sprintf(pick(imageAdviceTemplates, lang), analysis.Condition, analysis.Confidence*100)
}

// VoiceUnreadable is the fallback when transcription failed.
func (c *ResponseComposer) VoiceUnreadable(lang models.Language) string {
	return pick(voiceUnreadableTemplates, lang)
}

// SymptomList renders accumulated tags as a readable, localized list.
func (c *ResponseComposer) SymptomList(lang models.Language, tags []models.SymptomTag) string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		if perLang, ok := symptomNames[tag]; ok {
			names = append(names, pick(perLang, lang))
		} else {
			names = append(names, strings.ToLower(string(tag)))
		}
	}
	return strings.Join(names, ", ")
}
