// Package merger implements the field-level conflict resolution applied when
// the same entity was changed on several devices.
//
// Every function takes the device-side value as local and the server-side
// value as remote and returns the merged entity. Functions are pure: they
// perform no I/O, never mutate their arguments, and merging a value with
// itself returns it unchanged. Apart from the few fields that are explicitly
// owned by one side (UserProfile.DailyGoal and Achievement.Target follow the
// server, CollectionItem.Source follows the device), the result does not
// depend on argument order.
package merger
