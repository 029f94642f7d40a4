// Package deps models the installed dependencies of a yarn project and parses
// them out of package-manager listing output.
//
// # Overview
//
// A dependency listing is the flat text that `yarn list --depth=0` prints:
//
//	├─ @babel/core@7.24.0
//	├─ left-pad@1.3.0
//	└─ lodash@4.17.21
//
// [ParseLine] turns each line into a [Package] by skipping the tree
// decoration and splitting name from version at the last '@'. [ParseLines]
// does the same for a whole listing, keeping input order and reporting lines
// that looked like entries but could not be parsed.
//
// # Package Records
//
// A [Package] starts with only Name and Version. The registry client later
// attaches the publish date once with [Package.SetPublished]; a record
// without a date reports false from [Package.Resolved].
//
// The listing itself comes from the [yarn] subpackage.
package deps
