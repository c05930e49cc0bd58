/*
Package cssel collects a couple of small exercises around object
construction and stringification:

    selector    a fluent builder for CSS selector strings, enforcing the
                fragment order of a simple selector
    seldbg      debugging helpers for built selectors
    codec       JSON round-tripping which re-attaches behavior on the way back
    geom        a rectangle value with a derived area

The interesting piece is the selector builder; start reading there.
*/
package cssel
