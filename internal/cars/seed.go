package cars

import (
	"context"
	"fmt"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

// sampleCars mirrors the showroom's launch inventory.
var sampleCars = []CreateCarInput{
	{
		Title:        "مرسيدس S كلاس 2023",
		Make:         "مرسيدس",
		Model:        "S كلاس",
		Year:         2023,
		Price:        185000,
		Mileage:      15000,
		FuelType:     "بنزين",
		Transmission: "أوتوماتيك",
		EngineSize:   "4.0L V8",
		BodyType:     "سيدان",
		Location:     "صنعاء",
		Description:  strPtr("سيارة فاخرة بحالة ممتازة مع جميع الكماليات"),
		Features:     []string{"نظام ملاحة", "مقاعد جلدية", "فتحة سقف", "نظام صوتي متطور"},
		Images:       []string{"https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600"},
		IsFeatured:   boolPtr(true),
	},
	{
		Title:        "BMW X7 2022",
		Make:         "BMW",
		Model:        "X7",
		Year:         2022,
		Price:        156000,
		Mileage:      8500,
		FuelType:     "بنزين",
		Transmission: "أوتوماتيك",
		EngineSize:   "3.0L V6",
		BodyType:     "SUV",
		Location:     "عدن",
		Description:  strPtr("BMW X7 فاخرة مع تقنيات متقدمة"),
		Features:     []string{"دفع رباعي", "شاشة كبيرة", "مقاعد مدفأة", "نظام أمان متطور"},
		Images:       []string{"https://images.unsplash.com/photo-1555215695-3004980ad54e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600"},
		IsFeatured:   boolPtr(true),
	},
	{
		Title:        "لكزس LS 2021",
		Make:         "لكزس",
		Model:        "LS",
		Year:         2021,
		Price:        128000,
		Mileage:      22000,
		FuelType:     "هايبرد",
		Transmission: "أوتوماتيك",
		EngineSize:   "3.5L V6",
		BodyType:     "سيدان",
		Location:     "تعز",
		Description:  strPtr("سيارة هايبرد فاخرة صديقة للبيئة"),
		Features:     []string{"تقنية هايبرد", "مقاعد مساج", "نظام ترفيهي", "كاميرات 360"},
		Images:       []string{"https://images.unsplash.com/photo-1494905998402-395d579af36f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600"},
	},
	{
		Title:        "تويوتا لاند كروزر 2023",
		Make:         "تويوتا",
		Model:        "لاند كروزر",
		Year:         2023,
		Price:        198000,
		Mileage:      5200,
		FuelType:     "بنزين",
		Transmission: "أوتوماتيك",
		EngineSize:   "4.6L V8",
		BodyType:     "SUV",
		Location:     "الحديدة",
		Description:  strPtr("سيارة مغامرات قوية وموثوقة"),
		Features:     []string{"دفع رباعي", "تحكم في التضاريس", "مقاعد 8 أشخاص", "نظام ملاحة متقدم"},
		Images:       []string{"https://images.unsplash.com/photo-1519245659620-e859806a8d3b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600"},
		IsFeatured:   boolPtr(true),
	},
	{
		Title:        "أودي A8 2022",
		Make:         "أودي",
		Model:        "A8",
		Year:         2022,
		Price:        145000,
		Mileage:      12800,
		FuelType:     "بنزين",
		Transmission: "أوتوماتيك",
		EngineSize:   "3.0L V6",
		BodyType:     "سيدان",
		Location:     "إب",
		Description:  strPtr("أودي A8 بتصميم أنيق وتقنيات متطورة"),
		Features:     []string{"مصابيح LED", "مقاعد رياضية", "نظام صوتي بانغ آند أولفسن", "تحكم صوتي"},
		Images:       []string{"https://images.unsplash.com/photo-1606220588913-b3aacb4d2f46?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600"},
	},
	{
		Title:        "بورش كايين 2021",
		Make:         "بورش",
		Model:        "كايين",
		Year:         2021,
		Price:        175000,
		Mileage:      18500,
		FuelType:     "بنزين",
		Transmission: "أوتوماتيك",
		EngineSize:   "3.0L V6 تيربو",
		BodyType:     "SUV",
		Location:     "مأرب",
		Description:  strPtr("سيارة رياضية فاخرة بأداء استثنائي"),
		Features:     []string{"محرك تيربو", "نظام رياضي", "مقاعد رياضية", "عجلات رياضية"},
		Images:       []string{"https://images.unsplash.com/photo-1544636331-e26879cd4d9b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600"},
		IsFeatured:   boolPtr(true),
	},
}

// SeedSampleData loads the sample inventory into an empty catalog. A
// non-empty catalog is left untouched, so seeding is safe to run on every
// boot of a durable backing.
func SeedSampleData(ctx context.Context, svc Service) (int, error) {
	existing, err := svc.AllCars(ctx)
	if err != nil {
		return 0, fmt.Errorf("checking catalog before seed: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for _, input := range sampleCars {
		if _, err := svc.CreateCar(ctx, input); err != nil {
			return 0, fmt.Errorf("seeding %q: %w", input.Title, err)
		}
	}
	return len(sampleCars), nil
}
