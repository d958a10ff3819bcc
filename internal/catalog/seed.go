package catalog

func seedModules() []Module {
	return []Module{
		{ID: ModuleCareNest, Title: "CareNest", Description: "Home nursing, elder care, and comprehensive medical support", Bookable: true},
		{ID: ModuleNutriScan, Title: "NutriScan", Description: "Health checkups, doctor consultation, and report management", Bookable: true},
		{ID: ModuleMealAura, Title: "MealAura", Description: "Customized meal planning and healthy food delivery", Bookable: true},
		{ID: ModuleRejuvaFit, Title: "RejuvaFit", Description: "Yoga, physiotherapy, and at-home fitness programs", Bookable: true},
		{ID: ModuleBlissTouch, Title: "BlissTouch", Description: "Professional salon, grooming, and massage services", Bookable: true},
		{ID: ModuleSilverCircle, Title: "SilverCircle", Description: "Community events, social clubs, and activities for seniors", Bookable: false},
	}
}

func seedServices() map[string][]Service {
	return map[string][]Service{
		ModuleCareNest: {
			{ID: 1, Name: "Home Nursing (8 hours)", Description: "Professional nursing care at home", Price: "₹2,500"},
			{ID: 2, Name: "Home Nursing (12 hours)", Description: "Extended nursing support", Price: "₹3,500"},
			{ID: 3, Name: "Elder Care Support", Description: "Comprehensive elder care assistance", Price: "₹2,000"},
			{ID: 4, Name: "Medical Equipment Rental", Description: "Oxygen, wheelchair, and more", Price: "₹500/day"},
		},
		ModuleNutriScan: {
			{ID: 1, Name: "Full Body Checkup", Description: "Comprehensive health screening", Price: "₹3,999"},
			{ID: 2, Name: "Doctor Consultation", Description: "Video/In-person consultation", Price: "₹800"},
			{ID: 3, Name: "Blood Test Panel", Description: "Complete blood analysis", Price: "₹1,500"},
			{ID: 4, Name: "ECG & Heart Checkup", Description: "Cardiac health assessment", Price: "₹1,200"},
		},
		ModuleMealAura: {
			{ID: 1, Name: "Weekly Meal Plan", Description: "Customized healthy meals for 7 days", Price: "₹4,999"},
			{ID: 2, Name: "Monthly Meal Plan", Description: "30 days of nutritious meals", Price: "₹18,999"},
			{ID: 3, Name: "Diabetic-Friendly Meals", Description: "Specialized diet plan", Price: "₹5,999/week"},
			{ID: 4, Name: "Nutritionist Consultation", Description: "Personalized diet planning", Price: "₹1,500"},
		},
		ModuleRejuvaFit: {
			{ID: 1, Name: "Yoga Session (Single)", Description: "One-on-one yoga training at home", Price: "₹800"},
			{ID: 2, Name: "Yoga Package (10 sessions)", Description: "Flexible yoga program", Price: "₹7,000"},
			{ID: 3, Name: "Physiotherapy Session", Description: "Professional physio treatment", Price: "₹1,200"},
			{ID: 4, Name: "At-Home Fitness Training", Description: "Personalized fitness routine", Price: "₹1,000"},
		},
		ModuleBlissTouch: {
			{ID: 1, Name: "Hair Salon Service", Description: "Haircut, styling, and grooming", Price: "₹1,500"},
			{ID: 2, Name: "Massage Therapy (60 min)", Description: "Relaxing therapeutic massage", Price: "₹2,500"},
			{ID: 3, Name: "Spa Package", Description: "Complete wellness spa experience", Price: "₹4,999"},
			{ID: 4, Name: "Manicure & Pedicure", Description: "Hand and foot care", Price: "₹1,200"},
		},
		ModuleSilverCircle: {
			{ID: 1, Name: "Book Club Membership", Description: "Monthly book discussion groups", Price: "₹500/month"},
			{ID: 2, Name: "Art & Craft Workshop", Description: "Creative activity sessions", Price: "₹800"},
			{ID: 3, Name: "Musical Evening", Description: "Live music and social gathering", Price: "₹300"},
			{ID: 4, Name: "Gardening Club", Description: "Community gardening activities", Price: "₹400/month"},
		},
	}
}
