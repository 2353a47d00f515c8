// Package gif implements a decoder for the first image of a GIF file.
//
// The decoder parses the header, the logical screen descriptor and the
// global color table, locates the first image descriptor, and runs the
// LZW decompressor over the image's data sub-blocks. The result is a
// row-major grid of global color table indices, also exposed as an
// *image.Paletted through Decode.
//
// Animated files, interlaced row ordering, local color tables and
// extension blocks are not handled; whatever precedes the first image
// separator is skipped over.
package gif
