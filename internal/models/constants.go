package models

// CategoryOther is assigned when no keyword rule matches.
const CategoryOther = "Outros"

// Built-in categories, in the order of the default rule set.
const (
	CategoryFood        = "Alimentação"
	CategoryGroceries   = "Mercado"
	CategoryTransport   = "Transporte"
	CategoryHealth      = "Saúde"
	CategoryEducation   = "Educação"
	CategoryLeisure     = "Lazer"
	CategoryServices    = "Serviços"
	CategoryHome        = "Casa"
	CategoryClothing    = "Vestuário"
	CategoryElectronics = "Eletrônicos"
	CategoryTravel      = "Viagem"
)

// Keys under which collaborators persist their blobs in the settings store.
const (
	SettingsKeyCustomRules    = "customCategoryRules"
	SettingsKeyRecentSearches = "recentSearches"
	SettingsKeySavedSearches  = "savedSearches"
)

// File permissions
const (
	PermissionSettingsFile = 0600
	PermissionDirectory    = 0750
	PermissionReportFile   = 0644
)
