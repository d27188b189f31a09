package constant

// DashboardCacheKey holds the serialized dashboard stats in Redis.
const DashboardCacheKey = "dashboard:stats"
