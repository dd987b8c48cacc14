package redisstore

// Raw key layout of the store. Document records are JSON strings;
// category indexes are sets of business IDs. Category keys embed the
// spelling they were written under, which is why readers union every
// key variant of a category.
const (
	businessKeyPrefix    = "business:"
	adDesignKeyPrefix    = "addesign:"
	serviceAreaKeyPrefix = "servicearea:"
	categoryKeyPrefix    = "category:"
)

func businessKey(id string) string {
	return businessKeyPrefix + id
}

func adDesignKey(businessID string) string {
	return adDesignKeyPrefix + businessID
}

func serviceAreaKey(businessID string) string {
	return serviceAreaKeyPrefix + businessID
}

func categoryKey(variant string) string {
	return categoryKeyPrefix + variant
}
