// Package page builds HTML pages out of components.
//
// A [Page] is assembled from [Component]s and rendered within a [Context]
// that belongs to exactly one render.
// Rendering happens in two phases:
//
//  1. Each visible component, in order of weight,
//     is given a chance to inspect or modify the context
//     (see [BeforePreparer]) and is then prepared into HTML.
//  2. After the whole body is prepared,
//     the page's after-body [Action]s run in order of weight.
//     This is where assets requested by the body are resolved.
//
// The result is a [Document] that a renderer turns into HTML.
package page
