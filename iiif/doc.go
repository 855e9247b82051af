// Package iiif resolves the pixel dimensions of facsimile page images.
//
// The [Provider] interface is the contract the processing pipeline depends
// on. Three implementations are provided:
//
//   - [Client] - fetches info.json from an IIIF image server, with retry and
//     linear backoff; Gallica URIs are routed to the pagination service
//   - [GallicaClient] - reads Gallica's pagination XML, which lists the
//     dimensions of every page of an issue in one response, cached per ARK
//     identifier for the lifetime of the client
//   - [FileProvider] - reads dimensions from image files on disk (PNG, JPEG,
//     GIF, TIFF, BMP) for fully local corpora
//
// None of the types are safe for concurrent use; the pipeline processes
// pages strictly sequentially.
package iiif
