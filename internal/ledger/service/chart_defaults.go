package service

import (
	"time"

	"mizan/internal/ledger/models"
)

// RetainedEarningsCode is the equity account closing entries post to.
const RetainedEarningsCode = "3200"

// retainedEarningsFallbackName is used when the chart has no 3200 account.
const retainedEarningsFallbackName = "الأرباح المحتجزة"

// DefaultChartOfAccounts returns the standard chart for a construction
// contractor: top-level mains per statement section, grouping headings and
// postable leaf accounts. Codes band by leading digit (1 assets,
// 2 liabilities, 3 equity, 4 revenue, 5/6 expenses).
func DefaultChartOfAccounts() []*models.Account {
	now := time.Now()

	acc := func(code, name, nameEn string, typ models.AccountType, category, parent string, level int) *models.Account {
		return &models.Account{
			Code:       code,
			Name:       name,
			NameEn:     nameEn,
			Type:       typ,
			Category:   category,
			ParentCode: parent,
			Level:      level,
			IsActive:   true,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}

	return []*models.Account{
		// الأصول (Assets)
		acc("1000", "الأصول", "Assets", models.AccountTypeAsset, models.CategoryMain, "", 1),
		acc("1100", "الأصول المتداولة", "Current Assets", models.AccountTypeAsset, models.CategoryGroup, "1000", 2),
		acc("1110", "النقدية وما في حكمها", "Cash and Cash Equivalents", models.AccountTypeAsset, models.CategoryAccount, "1100", 3),
		acc("1120", "العملاء والذمم المدينة", "Accounts Receivable", models.AccountTypeAsset, models.CategoryAccount, "1100", 3),
		acc("1130", "المخزون", "Inventory", models.AccountTypeAsset, models.CategoryAccount, "1100", 3),
		acc("1140", "المصروفات المدفوعة مقدماً", "Prepaid Expenses", models.AccountTypeAsset, models.CategoryAccount, "1100", 3),
		acc("1200", "الأصول غير المتداولة", "Non-Current Assets", models.AccountTypeAsset, models.CategoryGroup, "1000", 2),
		acc("1210", "الممتلكات والمعدات", "Property, Plant & Equipment", models.AccountTypeAsset, models.CategoryAccount, "1200", 3),
		acc("1220", "الأصول غير الملموسة", "Intangible Assets", models.AccountTypeAsset, models.CategoryAccount, "1200", 3),

		// الخصوم (Liabilities)
		acc("2000", "الخصوم", "Liabilities", models.AccountTypeLiability, models.CategoryMain, "", 1),
		acc("2100", "الخصوم المتداولة", "Current Liabilities", models.AccountTypeLiability, models.CategoryGroup, "2000", 2),
		acc("2110", "الموردون والذمم الدائنة", "Accounts Payable", models.AccountTypeLiability, models.CategoryAccount, "2100", 3),
		acc("2120", "القروض قصيرة الأجل", "Short-term Debt", models.AccountTypeLiability, models.CategoryAccount, "2100", 3),
		acc("2130", "المصروفات المستحقة", "Accrued Expenses", models.AccountTypeLiability, models.CategoryAccount, "2100", 3),
		acc("2140", "ضريبة القيمة المضافة", "VAT Payable", models.AccountTypeLiability, models.CategoryAccount, "2100", 3),
		acc("2200", "الخصوم غير المتداولة", "Non-Current Liabilities", models.AccountTypeLiability, models.CategoryGroup, "2000", 2),
		acc("2210", "القروض طويلة الأجل", "Long-term Debt", models.AccountTypeLiability, models.CategoryAccount, "2200", 3),

		// حقوق الملكية (Equity)
		acc("3000", "حقوق الملكية", "Equity", models.AccountTypeEquity, models.CategoryMain, "", 1),
		acc("3100", "رأس المال المدفوع", "Paid-in Capital", models.AccountTypeEquity, models.CategoryAccount, "3000", 2),
		acc(RetainedEarningsCode, retainedEarningsFallbackName, "Retained Earnings", models.AccountTypeEquity, models.CategoryAccount, "3000", 2),

		// الإيرادات (Revenue)
		acc("4000", "الإيرادات", "Revenue", models.AccountTypeRevenue, models.CategoryMain, "", 1),
		acc("4100", "إيرادات المشاريع", "Project Revenue", models.AccountTypeRevenue, models.CategoryAccount, "4000", 2),
		acc("4200", "إيرادات المنافسات", "Tender Revenue", models.AccountTypeRevenue, models.CategoryAccount, "4000", 2),
		acc("4300", "إيرادات أخرى", "Other Revenue", models.AccountTypeRevenue, models.CategoryAccount, "4000", 2),

		// المصروفات (Expenses)
		acc("5000", "تكلفة البضاعة المباعة", "Cost of Goods Sold", models.AccountTypeExpense, models.CategoryMain, "", 1),
		acc("5100", "المواد المباشرة", "Direct Materials", models.AccountTypeExpense, models.CategoryAccount, "5000", 2),
		acc("5200", "العمالة المباشرة", "Direct Labor", models.AccountTypeExpense, models.CategoryAccount, "5000", 2),
		acc("5300", "المصروفات المباشرة", "Direct Expenses", models.AccountTypeExpense, models.CategoryAccount, "5000", 2),
		acc("6000", "المصروفات التشغيلية", "Operating Expenses", models.AccountTypeExpense, models.CategoryMain, "", 1),
		acc("6100", "المصروفات الإدارية", "Administrative Expenses", models.AccountTypeExpense, models.CategoryAccount, "6000", 2),
		acc("6200", "مصروفات البيع والتسويق", "Selling & Marketing Expenses", models.AccountTypeExpense, models.CategoryAccount, "6000", 2),
		acc("6300", "المصروفات العمومية", "General Expenses", models.AccountTypeExpense, models.CategoryAccount, "6000", 2),
	}
}
