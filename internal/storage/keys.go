package storage

// The persistent namespace is flat and string-keyed. Every key the app ever
// writes is named here so the "friends_<username>" concatenation scheme never
// leaks out of the storage package.

const (
	keyRegisteredUsernames = "registeredUsernames"
	keyLoggedInUsername    = "loggedInUsername"
	keyIsAuthenticated     = "isAuthenticated"
	keyCompletedTasks      = "completedTasks"
)

func passwordKey(username string) string { return "password_" + username }
func taskListKey(username string) string { return "dailyTasksArray_" + username }
func taskDateKey(username string) string { return "dailyTasksDate_" + username }
func friendsKey(username string) string  { return "friends_" + username }
func requestsKey(username string) string { return "friendRequests_" + username }
