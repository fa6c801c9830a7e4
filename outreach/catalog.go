package outreach

// Variable names recognized by ReplaceVariables. The catalogue is closed:
// adding a template variable means adding a constant here and mapping it in
// the render path, never widening the token grammar.
const (
	// VarInfluencerName — the influencer's handle as displayed
	VarInfluencerName = "인플루언서명"

	// VarAccountName — the influencer's profile name
	VarAccountName = "계정명"

	// VarFollowerCount ...
	VarFollowerCount = "팔로워수"

	// VarProductName ...
	VarProductName = "제품명"

	// VarBrandName ...
	VarBrandName = "브랜드명"

	// VarFee — the agreed content fee for paid seeding
	VarFee = "원고비"

	// VarAssigneeName — the campaign manager in charge
	VarAssigneeName = "담당자명"

	// VarGuideLink — public link to the content guide
	VarGuideLink = "가이드링크"
)

// Catalogue lists the known variables in the order the editor offers them.
var Catalogue = []string{
	VarInfluencerName,
	VarAccountName,
	VarFollowerCount,
	VarProductName,
	VarBrandName,
	VarFee,
	VarAssigneeName,
	VarGuideLink,
}

var catalogueSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Catalogue))
	for _, name := range Catalogue {
		m[name] = struct{}{}
	}
	return m
}()

// IsKnownVariable reports whether name is in the catalogue.
func IsKnownVariable(name string) bool {
	_, ok := catalogueSet[name]
	return ok
}
