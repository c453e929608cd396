package digester

// Exported aliases for testing internal functions from the
// digester_test package.

// HashFilesForTest exposes hashFiles.
var HashFilesForTest = hashFiles

// CollectFilesForTest exposes collectFiles.
var CollectFilesForTest = collectFiles

// CollectFilesWithForTest exposes collectFilesWith.
var CollectFilesWithForTest = collectFilesWith

// ResolvePathForTest exposes resolvePath.
var ResolvePathForTest = resolvePath
