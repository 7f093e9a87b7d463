/*
Package mirror keeps local clones of many remote repositories up to date.

	+-----------+      +----------+      +-----------+
	|  Syncer   | ---> |  Store   | ---> |    Git    |
	| (phases)  |      | (on disk)|      | (adapter) |
	+-----------+      +----------+      +-----------+

🗄️ Store layout:

	<store>/
	  <repository name>/   full clone of the default branch
	  <repository name>/
	  ...

Every immediate subdirectory of the store is a mirror. A subdirectory that
does not open as a repository fails the whole listing with an
InvalidMirrorError rather than being skipped.

🔄 Sync phases:
 1. list the store
 2. clone every required repository that has no mirror (concurrently)
 3. fetch origin for every mirror, old and new (concurrently)

Each phase fails on the first task error. Results are collected per task
and merged after the phase completes, so no map is shared between tasks.

The Git adapter lives in the gogit subpackage.
*/
package mirror
