package editor

import "github.com/mediadesk/taqrir/pkg/models/domain"

// defaultDocument builds the built-in seed report. Ids come from the injected
// generator so a reset produces a fresh identity set.
func defaultDocument(gen func() string) domain.ReportDocument {
	return domain.ReportDocument{
		Header: domain.ReportHeader{
			Title:    "التقرير الشهري - نوفمبر 2025",
			Subtitle: "تاريخ إصدار التقرير: 19 ديسمبر 2025",
		},
		Sections: []domain.Section{
			{
				ID:      gen(),
				Type:    domain.SectionTypeKPI,
				Title:   "الجزء الأول: منصة \"فلسطين صوف\"",
				Icon:    "chart-line",
				Visible: true,
				KPIs: []domain.KPICard{
					{ID: gen(), Icon: "users", Value: "1,250,400", Label: "إجمالي المتابعين", Visible: true},
					{ID: gen(), Icon: "file-text", Value: "185", Label: "إجمالي المحتوى المنشور", Visible: true},
					{ID: gen(), Icon: "heart", Value: "3.2 مليون", Label: "إجمالي التفاعلات", Visible: true},
					{ID: gen(), Icon: "megaphone", Value: "4", Label: "الحملات الإلكترونية", Visible: true},
				},
			},
			{
				ID:      gen(),
				Type:    domain.SectionTypeContent,
				Title:   "أفضل محتوى خلال الشهر",
				Icon:    "sparkles",
				Visible: true,
				Contents: []domain.ContentCard{
					{ID: gen(), ContentType: domain.ContentTypeVideo, Description: "فيديو قصير عن التراث الفلسطيني حقق أكثر من مليون مشاهدة", Visible: true},
					{ID: gen(), ContentType: domain.ContentTypeInfographic, Description: "إنفوجرافيك عن تطور التكنولوجيا في فلسطين", Visible: true},
					{ID: gen(), ContentType: domain.ContentTypeDesign, Description: "تصميم حملة #تراثنا_هويتنا", Visible: true},
					{ID: gen(), ContentType: domain.ContentTypeAI, Description: "محتوى بالذكاء الاصطناعي لتوضيح المعالم التاريخية", Visible: true},
				},
			},
			{
				ID:      gen(),
				Type:    domain.SectionTypeTable,
				Title:   "إجمالي عدد المتابعين",
				Icon:    "table",
				Visible: true,
				Tables: []domain.ReportTable{
					{
						ID:      gen(),
						Title:   "إجمالي عدد المتابعين",
						Visible: true,
						Columns: []domain.TableColumn{
							{ID: gen(), Header: "المنصة", Visible: true},
							{ID: gen(), Header: "عدد المتابعين", Visible: true},
							{ID: gen(), Header: "التغيير عن الشهر الماضي", Visible: true},
						},
						Rows: []domain.TableRow{
							{ID: gen(), Cells: map[string]string{"المنصة": "تلغرام", "عدد المتابعين": "450,120", "التغيير عن الشهر الماضي": "+ 12,500"}},
							{ID: gen(), Cells: map[string]string{"المنصة": "فيسبوك", "عدد المتابعين": "510,600", "التغيير عن الشهر الماضي": "+ 8,200"}},
							{ID: gen(), Cells: map[string]string{"المنصة": "تويتر (X)", "عدد المتابعين": "125,300", "التغيير عن الشهر الماضي": "+ 3,100"}},
							{ID: gen(), Cells: map[string]string{"المنصة": "إنستغرام", "عدد المتابعين": "152,880", "التغيير عن الشهر الماضي": "+ 9,800"}},
							{ID: gen(), Cells: map[string]string{"المنصة": "واتساب (قنوات)", "عدد المتابعين": "11,500", "التغيير عن الشهر الماضي": "+ 1,150"}},
						},
					},
				},
			},
			{
				ID:      gen(),
				Type:    domain.SectionTypeTable,
				Title:   "إجمالي المحتوى المنشور والتفاعل",
				Icon:    "bar-chart",
				Visible: true,
				Tables: []domain.ReportTable{
					{
						ID:      gen(),
						Title:   "التصاميم الإخبارية والمعلوماتية (المجموع: 95 تصميم)",
						Visible: true,
						Columns: []domain.TableColumn{
							{ID: gen(), Header: "اسم التصميم/الموضوع", Visible: true},
							{ID: gen(), Header: "النوع", Visible: true},
							{ID: gen(), Header: "التفاعل", Visible: true},
						},
						Rows: []domain.TableRow{
							{ID: gen(), Cells: map[string]string{"اسم التصميم/الموضوع": "إنفوجرافيك: تطور قطاع التكنولوجيا في الضفة الغربية", "النوع": "تصميم معلومات", "التفاعل": "150 ألف مشاهدة، 12 ألف إعجاب"}},
							{ID: gen(), Cells: map[string]string{"اسم التصميم/الموضوع": "تصميم خبري: افتتاح مشاريع بنية تحتية جديدة", "النوع": "تصميم إخباري", "التفاعل": "95 ألف مشاهدة، 7.5 ألف إعجاب"}},
						},
					},
					{
						ID:      gen(),
						Title:   "الفيديوهات (المجموع: 60 فيديو)",
						Visible: true,
						Columns: []domain.TableColumn{
							{ID: gen(), Header: "اسم الفيديو", Visible: true},
							{ID: gen(), Header: "المنصة الأساسية", Visible: true},
							{ID: gen(), Header: "المشاهدات", Visible: true},
							{ID: gen(), Header: "التفاعل", Visible: true},
						},
						Rows: []domain.TableRow{
							{ID: gen(), Cells: map[string]string{"اسم الفيديو": "فيديو قصير (Reel): جولة سريعة في حارات القدس", "المنصة الأساسية": "إنستغرام", "المشاهدات": "1.2 مليون", "التفاعل": "110 ألف"}},
							{ID: gen(), Cells: map[string]string{"اسم الفيديو": "فيديو وثائقي: قصة نجاح شركة ناشئة في رام الله", "المنصة الأساسية": "فيسبوك / يوتيوب", "المشاهدات": "350 ألف", "التفاعل": "35 ألف"}},
						},
					},
					{
						ID:      gen(),
						Title:   "الحملات الإلكترونية (المجموع: 4 حملات)",
						Visible: true,
						Columns: []domain.TableColumn{
							{ID: gen(), Header: "اسم الحملة", Visible: true},
							{ID: gen(), Header: "الهدف", Visible: true},
							{ID: gen(), Header: "النتائج الرئيسية", Visible: true},
							{ID: gen(), Header: "التقييم", Visible: true},
						},
						Rows: []domain.TableRow{
							{ID: gen(), Cells: map[string]string{"اسم الحملة": "#تراثنا_هويتنا", "الهدف": "الترويج للتراث الفلسطيني المادي وغير المادي.", "النتائج الرئيسية": "وصول 2.5 مليون مستخدم، 500 ألف تفاعل.", "التقييم": "ممتاز"}},
							{ID: gen(), Cells: map[string]string{"اسم الحملة": "#ادعم_المنتج_الوطني", "الهدف": "تشجيع شراء المنتجات المحلية.", "النتائج الرئيسية": "زيادة الوعي بنسبة 30% حسب الاستطلاعات.", "التقييم": "جيد جداً"}},
						},
					},
				},
			},
			{
				ID:      gen(),
				Type:    domain.SectionTypePlatforms,
				Title:   "الجزء الثاني: المنصات السكسونية",
				Icon:    "layout-grid",
				Visible: true,
				Platforms: []domain.PlatformCard{
					{ID: gen(), Title: "المنصة الشمالية", Visible: true, Items: []domain.PlatformItem{
						{Label: "عدد المتابعين", Value: "180,000"},
						{Label: "عدد الفواصل", Value: "25"},
						{Label: "عدد التصاميم", Value: "40"},
						{Label: "الحملات الإلكترونية", Value: "حملة \"شتاء دافئ\""},
					}},
					{ID: gen(), Title: "المنصة الجنوبية", Visible: true, Items: []domain.PlatformItem{
						{Label: "عدد المتابعين", Value: "155,000"},
						{Label: "عدد الفواصل", Value: "22"},
						{Label: "عدد التصاميم", Value: "35"},
						{Label: "الحملات الإلكترونية", Value: "مبادرة \"أرضنا خضراء\""},
					}},
					{ID: gen(), Title: "منصة خان يونس", Visible: true, Items: []domain.PlatformItem{
						{Label: "عدد المتابعين", Value: "195,000"},
						{Label: "عدد الفواصل", Value: "30"},
						{Label: "عدد التصاميم", Value: "50"},
						{Label: "الحملات الإلكترونية", Value: "تغطية \"مهرجان الثقافة\""},
					}},
					{ID: gen(), Title: "منصة غزة", Visible: true, Items: []domain.PlatformItem{
						{Label: "عدد المتابعين", Value: "250,000"},
						{Label: "عدد الفواصل", Value: "40"},
						{Label: "عدد التصاميم", Value: "65"},
						{Label: "الحملات الإلكترونية", Value: "حملة \"صنع في غزة\""},
					}},
					{ID: gen(), Title: "منصة دير البلح", Visible: true, Items: []domain.PlatformItem{
						{Label: "عدد المتابعين", Value: "120,000"},
						{Label: "عدد الفواصل", Value: "18"},
						{Label: "عدد التصاميم", Value: "30"},
						{Label: "الحملات الإلكترونية", Value: "متابعة المشاريع التنموية"},
					}},
				},
			},
			{
				ID:      gen(),
				Type:    domain.SectionTypeNotes,
				Title:   "الجزء الثالث: ملاحظات عامة وتوصيات",
				Icon:    "clipboard-list",
				Visible: true,
				NoteGroups: []domain.NoteGroup{
					{
						ID:      gen(),
						Title:   "إنجازات الموظفين",
						Icon:    "award",
						Visible: true,
						Items: []string{
							"تكريم المصمم \"أحمد خالد\" لتصميمه المبتكر في حملة #تراثنا_هويتنا الذي حقق أعلى تفاعل.",
							"جهود مميزة من فريق الفيديو في إنتاج سلسلة فيديوهات قصيرة حققت انتشاراً واسعاً على منصة إنستغرام.",
							"نجاح مدير المنصات \"سارة علي\" في زيادة عدد المتابعين على قناة التلغرام بنسبة غير مسبوقة.",
						},
					},
					{
						ID:      gen(),
						Title:   "الاجتماعات والمستجدات",
						Icon:    "calendar",
						Visible: true,
						Items: []string{
							"الاجتماع الأسبوعي بتاريخ 15 نوفمبر: تم إقرار خطة المحتوى لشهر ديسمبر مع التركيز على فعاليات نهاية العام.",
							"ورشة عمل بتاريخ 25 نوفمبر: تدريب الفريق على أحدث تقنيات تحسين محركات البحث (SEO) للمحتوى الرقمي.",
							"تم الاتفاق على إطلاق بودكاست شهري جديد ابتداءً من يناير 2026 لمناقشة القضايا الثقافية والاجتماعية.",
						},
					},
					{
						ID:      gen(),
						Title:   "ملاحظات الأداء والتوصيات",
						Icon:    "lightbulb",
						Visible: true,
						Items: []string{
							"لوحظ أن محتوى الفيديو القصير (Reels) يحقق أعلى معدلات وصول وتفاعل، يوصى بزيادة إنتاجه بنسبة 25%.",
							"التفاعل على منصة تويتر (X) أقل من المتوقع مقارنة بالمنصات الأخرى، يوصى بتطوير استراتيجية محتوى خاصة بالمنصة.",
							"الحملات التي تعتمد على مشاركة الجمهور مثل #تراثنا_هويتنا أثبتت نجاحها، يوصى بتبني هذا النهج في الحملات القادمة.",
							"يوصى بتخصيص ميزانية إعلانية صغيرة لتجربة الترويج للمحتوى المتميز على منصة فيسبوك لزيادة الوصول إلى شرائح جديدة.",
						},
					},
				},
			},
		},
		Footer: domain.ReportFooter{
			Line1: "تقرير مقدم من قسم الإعلام الرقمي - منصة فلسطين صوف",
			Line2: "© 2025 جميع الحقوق محفوظة.",
		},
	}
}

func defaultSettings() domain.ReportSettings {
	return domain.ReportSettings{
		ShowHeader:          true,
		ShowFooter:          true,
		ShowKPIs:            true,
		ShowPlatformCards:   true,
		ShowNotes:           true,
		ShowContent:         true,
		EnableTableStriping: true,
		EnableHoverEffects:  true,
		PrimaryColor:        "#00796b",
		AccentColor:         "#d4af37",
		Email: domain.EmailSettings{
			Emails:           []string{},
			OrganizationName: "منصة فلسطين صوف",
			ReportMonth:      "نوفمبر 2025",
		},
		Theme: domain.ThemeSettings{
			PrimaryColor: "teal",
			AccentColor:  "gold",
			CardStyle:    domain.CardStyleModern,
			FontFamily:   "both",
		},
	}
}
