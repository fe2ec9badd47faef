// Package untar extracts tar, tar.gz, tgz, tar.xz, tar.bz2 and zip archives into a
// directory on the local filesystem.
//
// The archive format is determined by the file extension, see [SelectFormat].
// Compressed tar archives are decoded as a stream; zip archives are read with
// random access. Directories and files are created below the destination,
// and permissions stored in tar headers are restored on POSIX systems.
//
// Configuration is done using the [Config], which is created with [NewConfig] and
// adjusted with options like [WithProgress], [WithLogger] or [WithSummaryHook].
// The counters of each run are collected in a [Summary].
//
// Entries whose path would leave the destination directory are rejected with
// [ErrPathTraversal].
package untar
