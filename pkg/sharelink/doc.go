// Package sharelink converts between the opaque share token the vendor
// embeds in recipe share URLs and its decoded byte form.
//
// A share link looks like:
//
//	https://share-h5.xbloom.com/?id=yB2qdGZ0pyV46fw2fbLjRw%3D%3D
//
// The id parameter is a percent-encoded, standard-padded base64 string
// over an opaque 16-byte identifier block. The backend resolves that
// block to a recipe; this package validates and round-trips the encoding
// layers exactly (byte for byte) and deliberately does not interpret the
// block's contents. The inner transform is isolated in DecodeToken and
// EncodeToken so it can be swapped independently if the block format is
// ever determined.
package sharelink
