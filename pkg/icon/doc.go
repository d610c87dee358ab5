/*
Package icon is the platform capability foldericon drives: decoding an image
from disk and binding it to a directory as the directory's custom icon.

	+-------------+      +-------------+
	|   Loader    | ---> |    Icon     |
	| (decode)    |      | path+image  |
	+-------------+      +------+------+
	                            |
	                     +------+------+
	                     |   Binder    |
	                     | (per OS)    |
	                     +-------------+

Binders:

  - darwin: FinderBinder writes the classic "Icon\r" file whose resource fork
    holds an icns resource (id -16455) and flags the folder with
    kHasCustomIcon in its com.apple.FinderInfo attribute, which is what
    Finder reads.
  - linux: GioBinder sets the GVfs metadata::custom-icon attribute through
    the gio tool, which Nautilus and other GIO file managers honour.
  - anything else: every call fails, which surfaces as a failed status line.

A nil *Icon passed to SetFolderIcon clears the custom icon.
*/
package icon
