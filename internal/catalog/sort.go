package catalog

// 排序键
const (
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortYearDesc   = "year_desc"
	SortYearAsc    = "year_asc"
	SortRatingDesc = "rating_desc"
	SortTitleAsc   = "title_asc"
	SortTitleDesc  = "title_desc"
)

// Field 可排序字段
type Field string

const (
	FieldCreated   Field = "created"
	FieldYear      Field = "year"
	FieldRating    Field = "rating"
	FieldTitle     Field = "title"
	FieldRelevance Field = "relevance"
)

// Key 单个排序项
type Key struct {
	Field Field
	Desc  bool
}

// Order 有序的排序项列表，前面的优先
type Order []Key

var sortKeys = map[string]Key{
	SortNewest:     {FieldCreated, true},
	SortOldest:     {FieldCreated, false},
	SortYearDesc:   {FieldYear, true},
	SortYearAsc:    {FieldYear, false},
	SortRatingDesc: {FieldRating, true},
	SortTitleAsc:   {FieldTitle, false},
	SortTitleDesc:  {FieldTitle, true},
}

// ResolveSort 根据排序键得到排序规则。
// 存在全文检索时忽略排序键，按相关度降序、创建时间降序排列。
func ResolveSort(key string, hasText bool) Order {
	if hasText {
		return Order{{FieldRelevance, true}, {FieldCreated, true}}
	}

	k, ok := sortKeys[key]
	if !ok {
		k = sortKeys[SortNewest]
	}

	if k.Field == FieldCreated {
		return Order{k}
	}
	// 非时间排序时用创建时间打破并列，保证分页稳定
	return Order{k, {FieldCreated, true}}
}
