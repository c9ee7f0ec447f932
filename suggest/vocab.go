package suggest

// Popular and trending completions are fixed domain vocabularies, scanned in
// list order. They are deliberately not derived from usage data.
var defaultPopularTerms = []string{
	"患者管理",
	"预约挂号",
	"数据分析",
	"检验报告",
	"药品管理",
	"财务报表",
	"远程会诊",
	"病历档案",
}

var defaultTrendingTerms = []string{
	"智能诊断",
	"健康监测",
	"疫苗接种",
	"慢病管理",
}

// Contextual completions are plain string templating over the raw input, in
// fixed order. There is no inference behind them.
var contextualSuffixes = []string{
	"分析报告",
	"详细数据",
}
