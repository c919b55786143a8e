package content

import (
	"github.com/occlusa/dental-web/internal/icons"
	"github.com/occlusa/dental-web/internal/portable"
)

// FallbackPillarSlug is served when a requested service pillar has no default entry.
const FallbackPillarSlug = "dental-implants"

// Defaults are the literal tables used whenever the store has nothing usable.
type Defaults struct {
	SiteSettings     SiteSettings
	Hero             Hero
	Services         []Service
	Testimonials     []Testimonial
	TeamMembers      []TeamMember
	TourismPricing   []TourismPrice
	FAQs             []FAQ
	AboutPage        AboutPage
	TechnologyPage   TechnologyPage
	HomePage         HomePage
	ServicesPage     ServicesPage
	DSDPage          DSDPage
	TourismPage      TourismPage
	ServicePillars   map[string]ServicePillar
	BeforeAfterCases []BeforeAfterCase
	Placeholders     Placeholders
}

// Placeholders are image URLs for store items that carry no image.
type Placeholders struct {
	Service     string
	Testimonial string
	TeamMember  string
	BeforeAfter string
}

func icon(key string) icons.Icon {
	return icons.Resolve(key)
}

func text(key, body string) portable.Blocks {
	return portable.Blocks{portable.Text(key, body)}
}

// DefaultTables returns a fresh copy of the built-in content.
func DefaultTables() Defaults {
	return Defaults{
		SiteSettings: SiteSettings{
			ClinicName: "Occlusa Dental Clinic",
			Phone:      "+90 212 555 01 23",
			WhatsApp:   "+90 532 555 01 23",
			Email:      "hello@occlusadental.com",
			Address:    "Abdi İpekçi Cad. No: 42, Nişantaşı, 34367 Şişli/İstanbul, Türkiye",
			SocialLinks: []SocialLink{
				{Platform: "instagram", URL: "https://www.instagram.com/occlusadental"},
				{Platform: "facebook", URL: "https://www.facebook.com/occlusadental"},
				{Platform: "youtube", URL: "https://www.youtube.com/@occlusadental"},
			},
			WorkingHours:   "Mon–Sat 09:00–19:00",
			SEOTitle:       "Occlusa Dental Clinic | Implants, Veneers & Smile Design in Istanbul",
			SEODescription: "Digitally planned implant, veneer and smile design treatments in Istanbul, with complete treatment packages for international patients.",
			OGImageURL:     "https://placehold.co/1200x630?text=Occlusa+Dental",
			Geo:            GeoPoint{Lat: 41.0519, Lng: 28.9947},
		},
		Hero: Hero{
			Title:              "Architect Your Perfect Occlusion",
			Subtitle:           "Digitally planned implants, veneers and full-mouth rehabilitation, designed around how your teeth meet.",
			CTAText:            "Book a Free Consultation",
			CTALink:            "/contact",
			BackgroundImageURL: "https://placehold.co/1920x1080?text=Occlusa",
			BackgroundAlt:      "Dentist reviewing a digital smile design with a patient",
		},
		Services: []Service{
			{ID: "service-implants", Title: "Dental Implants", Description: "Guided-surgery titanium and zirconia implants that restore chewing function for life.", Icon: icon("implant"), ImageURL: "https://placehold.co/800x600?text=Implants", Order: 1},
			{ID: "service-veneers", Title: "Porcelain Veneers", Description: "Hand-layered e.max and feldspathic veneers shaped from your digital smile design.", Icon: icon("sparkles"), ImageURL: "https://placehold.co/800x600?text=Veneers", Order: 2},
			{ID: "service-dsd", Title: "Digital Smile Design", Description: "Preview your new smile on screen and in a mock-up before any tooth is touched.", Icon: icon("scan"), ImageURL: "https://placehold.co/800x600?text=DSD", Order: 3},
			{ID: "service-crowns", Title: "Zirconia Crowns", Description: "Metal-free crowns milled in our in-house lab for strength and natural translucency.", Icon: icon("tooth"), ImageURL: "https://placehold.co/800x600?text=Crowns", Order: 4},
			{ID: "service-whitening", Title: "Teeth Whitening", Description: "In-office and take-home whitening protocols with sensitivity control.", Icon: icon("smile"), ImageURL: "https://placehold.co/800x600?text=Whitening", Order: 5},
			{ID: "service-occlusion", Title: "Bite & TMJ Therapy", Description: "Occlusal analysis and splint therapy to relieve jaw pain and protect restorations.", Icon: icon("shield"), ImageURL: "https://placehold.co/800x600?text=Occlusion", Order: 6},
		},
		Testimonials: []Testimonial{
			{ID: "testimonial-sarah", Name: "Sarah M.", Country: "United Kingdom", Flag: "🇬🇧", Text: "From the airport pickup to the final fitting, every step was planned. My veneers look completely natural.", Rating: 5, ImageURL: "https://placehold.co/160x160?text=SM"},
			{ID: "testimonial-markus", Name: "Markus K.", Country: "Germany", Flag: "🇩🇪", Text: "Two implants placed with guided surgery and almost no swelling. Precise and honest advice.", Rating: 5, ImageURL: "https://placehold.co/160x160?text=MK"},
			{ID: "testimonial-emily", Name: "Emily R.", Country: "United States", Flag: "🇺🇸", Text: "Seeing my smile design before treatment made the decision easy. The team was wonderful.", Rating: 5, ImageURL: "https://placehold.co/160x160?text=ER"},
			{ID: "testimonial-lars", Name: "Lars J.", Country: "Netherlands", Flag: "🇳🇱", Text: "My bite finally feels right after years of headaches. Highly recommended.", Rating: 4, ImageURL: "https://placehold.co/160x160?text=LJ"},
		},
		TeamMembers: []TeamMember{
			{ID: "team-aylin", Name: "Dr. Aylin Demir", Role: "Prosthodontist & Clinical Director", Bio: text("bio-aylin", "Specialist in full-mouth rehabilitation and occlusion with 15 years of experience in digital prosthodontics."), ImageURL: "https://placehold.co/600x750?text=Dr.+Demir", Order: 1},
			{ID: "team-kerem", Name: "Dr. Kerem Aksoy", Role: "Oral Surgeon", Bio: text("bio-kerem", "Performs guided implant surgery, sinus lifts and bone grafting using CBCT-based planning."), ImageURL: "https://placehold.co/600x750?text=Dr.+Aksoy", Order: 2},
			{ID: "team-selin", Name: "Dr. Selin Yıldız", Role: "Cosmetic Dentist", Bio: text("bio-selin", "Designs veneer and whitening treatments with digital smile design and mock-up try-ins."), ImageURL: "https://placehold.co/600x750?text=Dr.+Yildiz", Order: 3},
		},
		TourismPricing: []TourismPrice{
			{ID: "price-implant", Treatment: "Single Dental Implant", PriceTR: "€650", PriceUK: "£2,500", PriceUS: "$4,500", PriceDE: "€2,800", Savings: "Save up to 75%", Order: 1},
			{ID: "price-veneer", Treatment: "E.max Veneer (per tooth)", PriceTR: "€350", PriceUK: "£900", PriceUS: "$1,800", PriceDE: "€1,100", Savings: "Save up to 70%", Order: 2},
			{ID: "price-crown", Treatment: "Zirconia Crown", PriceTR: "€250", PriceUK: "£800", PriceUS: "$1,500", PriceDE: "€950", Savings: "Save up to 72%", Order: 3},
			{ID: "price-allon4", Treatment: "All-on-4 (per arch)", PriceTR: "€5,500", PriceUK: "£14,000", PriceUS: "$24,000", PriceDE: "€16,000", Savings: "Save up to 65%", Order: 4},
			{ID: "price-whitening", Treatment: "In-office Whitening", PriceTR: "€200", PriceUK: "£450", PriceUS: "$700", Savings: "Save up to 55%", Order: 5},
		},
		FAQs: []FAQ{
			{ID: "faq-duration", Question: "How long do I need to stay in Istanbul?", Answer: "Veneers and crowns take 5 to 7 days. Implants need two visits: placement, then the final teeth three to four months later.", Order: 1},
			{ID: "faq-guarantee", Question: "Is my treatment guaranteed?", Answer: "Implants carry a lifetime manufacturer warranty and our restorations are guaranteed for 10 years.", Order: 2},
			{ID: "faq-pain", Question: "Will the treatment hurt?", Answer: "Procedures are performed under local anaesthesia, with sedation available for implant surgery.", Order: 3},
			{ID: "faq-package", Question: "What is included in the tourism package?", Answer: "Airport transfers, hotel accommodation, transfers between hotel and clinic, and a personal coordinator.", Order: 4},
			{ID: "faq-consultation", Question: "Can I get a quote before travelling?", Answer: "Yes. Send a recent panoramic X-ray or photos and we will prepare a treatment plan and quote free of charge.", Order: 5},
			{ID: "faq-materials", Question: "Which implant brands do you use?", Answer: "We use Straumann, Nobel Biocare and Osstem implants, chosen per case.", Order: 6},
		},
		AboutPage: AboutPage{
			HeroTitle:    "Dentistry Built on Occlusion",
			HeroSubtitle: "A clinic founded by prosthodontists who believe every beautiful smile starts with a healthy bite.",
			Mission:      "Deliver long-lasting, functional and natural-looking results through digital planning and honest care.",
			Values: []Feature{
				{Title: "Precision", Description: "Every case is planned digitally before treatment begins.", Icon: icon("microscope")},
				{Title: "Honesty", Description: "We recommend only the treatment you need.", Icon: icon("shield")},
				{Title: "Comfort", Description: "Gentle techniques and sedation options for anxious patients.", Icon: icon("heart")},
			},
			Stats: []Stat{
				{Value: "15+", Label: "Years of experience"},
				{Value: "12,000+", Label: "Implants placed"},
				{Value: "40+", Label: "Countries served"},
			},
			Timeline: []Step{
				{Number: "2010", Title: "Founded", Description: "Opened as a two-chair prosthodontic practice in Nişantaşı.", Icon: icon("award")},
				{Number: "2016", Title: "In-house lab", Description: "Added a CAD/CAM laboratory for same-week restorations.", Icon: icon("cpu")},
				{Number: "2021", Title: "International patients", Description: "Launched complete treatment packages for patients from abroad.", Icon: icon("plane")},
			},
		},
		TechnologyPage: TechnologyPage{
			HeroTitle:    "Technology That Plans Every Millimetre",
			HeroSubtitle: "From 3D imaging to guided surgery, our workflow is fully digital.",
			Technologies: []Feature{
				{Title: "CBCT 3D Imaging", Description: "Low-dose cone beam scans for bone and nerve mapping.", Icon: icon("scan")},
				{Title: "Intraoral Scanning", Description: "Impression-free digital models in minutes.", Icon: icon("camera")},
				{Title: "Guided Implant Surgery", Description: "3D-printed guides place implants exactly as planned.", Icon: icon("implant")},
				{Title: "CAD/CAM Milling", Description: "Zirconia and e.max restorations milled in-house.", Icon: icon("cpu")},
			},
			Stats: []Stat{
				{Value: "0.1 mm", Label: "Planning accuracy"},
				{Value: "90%", Label: "Less radiation than conventional CT"},
			},
		},
		HomePage: HomePage{
			Features: []Feature{
				{Title: "Specialist Team", Description: "Prosthodontists, surgeons and cosmetic dentists under one roof.", Icon: icon("users")},
				{Title: "Digital Planning", Description: "See and approve your result before treatment starts.", Icon: icon("scan")},
				{Title: "Lifetime Warranty", Description: "Implant warranty backed by the manufacturer.", Icon: icon("shield")},
				{Title: "All-inclusive Travel", Description: "Hotel, transfers and a personal coordinator.", Icon: icon("plane")},
			},
			Stats: []Stat{
				{Value: "15+", Label: "Years of experience"},
				{Value: "8,500+", Label: "Happy patients"},
				{Value: "4.9", Label: "Average rating"},
			},
			Process: []Step{
				{Number: "01", Title: "Online Consultation", Description: "Share photos or X-rays and receive a plan.", Icon: icon("calendar")},
				{Number: "02", Title: "Digital Design", Description: "We design your smile and bite digitally.", Icon: icon("scan")},
				{Number: "03", Title: "Treatment", Description: "Precise, comfortable treatment in Istanbul.", Icon: icon("tooth")},
				{Number: "04", Title: "Aftercare", Description: "Remote follow-up and annual check-ins.", Icon: icon("heart")},
			},
			CTATitle:    "Ready to design your smile?",
			CTASubtitle: "Get a free treatment plan within 48 hours.",
		},
		ServicesPage: ServicesPage{
			HeroTitle:    "Treatments Designed Around Your Bite",
			HeroSubtitle: "Restorative and cosmetic dentistry planned with the same digital workflow.",
			Highlights: []Feature{
				{Title: "Same-week Restorations", Description: "In-house lab for crowns and veneers.", Icon: icon("clock")},
				{Title: "Premium Materials", Description: "Certified implants and ceramics only.", Icon: icon("award")},
				{Title: "Transparent Pricing", Description: "Fixed quotes with nothing hidden.", Icon: icon("check")},
			},
			Process: []Step{
				{Number: "01", Title: "Examination", Description: "Clinical exam, scans and photographs.", Icon: icon("microscope")},
				{Number: "02", Title: "Plan", Description: "A written plan with options and costs.", Icon: icon("check")},
				{Number: "03", Title: "Treatment", Description: "Carried out by the matching specialist.", Icon: icon("tooth")},
			},
		},
		DSDPage: DSDPage{
			HeroTitle:    "Digital Smile Design",
			HeroSubtitle: "See your new smile before treatment begins.",
			Benefits: []Feature{
				{Title: "Preview First", Description: "Approve your design on screen and in a mock-up.", Icon: icon("camera")},
				{Title: "Facially Driven", Description: "Teeth proportioned to your lips, face and smile line.", Icon: icon("smile")},
				{Title: "Functional", Description: "Designs are checked against your bite.", Icon: icon("shield")},
			},
			Process: []Step{
				{Number: "01", Title: "Photos & Video", Description: "Facial photos and a short smile video.", Icon: icon("camera")},
				{Number: "02", Title: "Digital Design", Description: "Your smile is designed on a 3D model.", Icon: icon("cpu")},
				{Number: "03", Title: "Mock-up", Description: "Try the design in your mouth before committing.", Icon: icon("smile")},
			},
			Stats: []Stat{
				{Value: "2,000+", Label: "Smiles designed"},
				{Value: "98%", Label: "Approve the first design"},
			},
		},
		TourismPage: TourismPage{
			HeroTitle:    "Dental Tourism in Istanbul",
			HeroSubtitle: "Specialist care and a complete travel package at a fraction of UK, US and German prices.",
			Included: []Feature{
				{Title: "VIP Transfers", Description: "Airport, hotel and clinic transfers.", Icon: icon("plane")},
				{Title: "Hotel Stay", Description: "Four or five star accommodation near the clinic.", Icon: icon("hotel")},
				{Title: "Personal Coordinator", Description: "An English-speaking coordinator throughout your stay.", Icon: icon("users")},
			},
			Journey: []Step{
				{Number: "01", Title: "Free Plan", Description: "Send X-rays or photos for a free plan and quote.", Icon: icon("calendar")},
				{Number: "02", Title: "Arrive", Description: "We meet you at the airport.", Icon: icon("plane")},
				{Number: "03", Title: "Treatment", Description: "Treatment over 5 to 7 days.", Icon: icon("tooth")},
				{Number: "04", Title: "Fly Home", Description: "Remote aftercare once you are home.", Icon: icon("heart")},
			},
			Stats: []Stat{
				{Value: "40+", Label: "Countries"},
				{Value: "70%", Label: "Average saving"},
			},
		},
		ServicePillars: defaultServicePillars(),
		BeforeAfterCases: []BeforeAfterCase{
			{ID: "case-veneers", Label: "Ten e.max veneers", BeforeURL: "https://placehold.co/1200x800?text=Before+Veneers", AfterURL: "https://placehold.co/1200x800?text=After+Veneers", Treatment: "veneers", SortOrder: 1},
			{ID: "case-implants", Label: "Full-arch implant bridge", BeforeURL: "https://placehold.co/1200x800?text=Before+Implants", AfterURL: "https://placehold.co/1200x800?text=After+Implants", Treatment: "implants", SortOrder: 2},
			{ID: "case-whitening", Label: "In-office whitening", BeforeURL: "https://placehold.co/1200x800?text=Before+Whitening", AfterURL: "https://placehold.co/1200x800?text=After+Whitening", Treatment: "whitening", SortOrder: 3},
		},
		Placeholders: Placeholders{
			Service:     "https://placehold.co/800x600?text=Occlusa",
			Testimonial: "https://placehold.co/160x160?text=Patient",
			TeamMember:  "https://placehold.co/600x750?text=Occlusa",
			BeforeAfter: "https://placehold.co/1200x800?text=Occlusa",
		},
	}
}

func defaultServicePillars() map[string]ServicePillar {
	return map[string]ServicePillar{
		"dental-implants": {
			Slug:         "dental-implants",
			SEO:          PillarSEO{Title: "Dental Implants in Istanbul | Occlusa Dental Clinic", Description: "Guided implant surgery with lifetime-warranty implants, planned from 3D scans."},
			HeroTitle:    "Dental Implants",
			HeroSubtitle: "Fixed teeth that look, feel and function like your own.",
			Sections: []PillarSection{
				{Heading: "What is a dental implant?", Body: text("implants-what", "A titanium or zirconia root placed in the jaw bone that supports a crown, bridge or full-arch restoration."), Icon: icon("implant")},
				{Heading: "Guided surgery", Body: text("implants-guided", "We plan each implant on a CBCT scan and place it through a 3D-printed guide for accuracy and faster healing."), Icon: icon("scan")},
				{Heading: "Healing and final teeth", Body: text("implants-healing", "After three to four months of integration your final zirconia crowns are fitted."), Icon: icon("clock")},
			},
			Technologies: []Feature{
				{Title: "CBCT Planning", Description: "3D bone and nerve mapping.", Icon: icon("scan")},
				{Title: "Surgical Guides", Description: "Printed in-house for each case.", Icon: icon("cpu")},
			},
			Benefits: []Feature{
				{Title: "Lifetime Warranty", Description: "Manufacturer-backed implant warranty.", Icon: icon("shield")},
				{Title: "Bone Preservation", Description: "Implants stimulate the jaw bone and prevent loss.", Icon: icon("heart")},
				{Title: "Natural Function", Description: "Eat and speak with confidence.", Icon: icon("smile")},
			},
			FAQs: []QA{
				{Question: "How long do implants last?", Answer: "With good hygiene and regular check-ups, implants can last a lifetime."},
				{Question: "Am I a candidate for implants?", Answer: "Most adults with healthy gums are. Bone grafting can help when bone volume is low."},
			},
			PrimaryCTA:   "Get Your Implant Plan",
			SecondaryCTA: "View Implant Prices",
		},
		"porcelain-veneers": {
			Slug:         "porcelain-veneers",
			SEO:          PillarSEO{Title: "Porcelain Veneers in Istanbul | Occlusa Dental Clinic", Description: "Minimal-prep e.max veneers designed with digital smile design."},
			HeroTitle:    "Porcelain Veneers",
			HeroSubtitle: "Thin ceramic shells crafted to your face and bite.",
			Sections: []PillarSection{
				{Heading: "Minimal preparation", Body: text("veneers-prep", "Most veneers need only 0.3 to 0.5 mm of enamel reduction, guided by a mock-up."), Icon: icon("tooth")},
				{Heading: "Designed digitally", Body: text("veneers-design", "Shape, length and shade are agreed in your smile design before anything is prepared."), Icon: icon("scan")},
			},
			Technologies: []Feature{
				{Title: "E.max Ceramics", Description: "High-strength lithium disilicate.", Icon: icon("sparkles")},
			},
			Benefits: []Feature{
				{Title: "Natural Look", Description: "Layered for lifelike translucency.", Icon: icon("smile")},
				{Title: "Stain Resistant", Description: "Ceramic keeps its colour.", Icon: icon("shield")},
			},
			FAQs: []QA{
				{Question: "How many veneers do I need?", Answer: "Usually the teeth visible when you smile, typically eight to ten per arch."},
			},
			PrimaryCTA:   "Design My Smile",
			SecondaryCTA: "View Veneer Prices",
		},
		"digital-smile-design": {
			Slug:         "digital-smile-design",
			SEO:          PillarSEO{Title: "Digital Smile Design | Occlusa Dental Clinic", Description: "Preview your new smile before treatment with digital smile design and mock-ups."},
			HeroTitle:    "Digital Smile Design",
			HeroSubtitle: "Your smile, designed and tested before treatment.",
			Sections: []PillarSection{
				{Heading: "How it works", Body: text("dsd-how", "We combine facial photos, video and intraoral scans to design teeth that suit your face."), Icon: icon("camera")},
			},
			Technologies: []Feature{
				{Title: "Intraoral Scanner", Description: "Accurate 3D models without impressions.", Icon: icon("scan")},
			},
			Benefits: []Feature{
				{Title: "Predictable", Description: "Know the result before you commit.", Icon: icon("check")},
			},
			FAQs: []QA{
				{Question: "Can I change the design?", Answer: "Yes. The design is refined with you until you are happy."},
			},
			PrimaryCTA:   "Start My Design",
			SecondaryCTA: "See Results",
		},
		"teeth-whitening": {
			Slug:         "teeth-whitening",
			SEO:          PillarSEO{Title: "Teeth Whitening | Occlusa Dental Clinic", Description: "Safe in-office and take-home whitening with sensitivity control."},
			HeroTitle:    "Teeth Whitening",
			HeroSubtitle: "Several shades brighter in a single visit.",
			Sections: []PillarSection{
				{Heading: "In-office whitening", Body: text("whitening-office", "A professional gel activated under light for fast, even results."), Icon: icon("sparkles")},
			},
			Technologies: []Feature{
				{Title: "Light Activation", Description: "Accelerates the whitening gel.", Icon: icon("sparkles")},
			},
			Benefits: []Feature{
				{Title: "Fast", Description: "Results in about an hour.", Icon: icon("clock")},
			},
			FAQs: []QA{
				{Question: "Is whitening safe for enamel?", Answer: "Yes. Professional gels are applied with gum protection and desensitising agents."},
			},
			PrimaryCTA:   "Book Whitening",
			SecondaryCTA: "View Prices",
		},
	}
}
