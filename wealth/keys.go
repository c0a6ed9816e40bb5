package wealth

import (
	"strconv"

	"github.com/wealthnest/client-go/enums"
	"github.com/wealthnest/client-go/querycache"
)

func FamiliesKey() querycache.Key {
	return querycache.NewKey(enums.FamiliesResource)
}

// FamilyMembersKey scopes the member list to one family.
func FamilyMembersKey(familyID int64) querycache.Key {
	return querycache.NewScopedKey(enums.FamilyMembersResource, strconv.FormatInt(familyID, 10))
}

func AccountsKey() querycache.Key {
	return querycache.NewKey(enums.AccountsResource)
}

func TransactionsKey() querycache.Key {
	return querycache.NewKey(enums.TransactionsResource)
}

func DashboardKey() querycache.Key {
	return querycache.NewKey(enums.DashboardResource)
}
