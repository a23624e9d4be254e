// Package hctree implements Huffman coding over the byte alphabet using an
// explicit code tree.  The tree is built from observed symbol frequencies, and
// its full shape is written ahead of the coded data as a self-describing
// header, so the receiving end needs no code-length table to decode.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     D. A. Huffman, "A Method for the Construction of Minimum-Redundancy
//     Codes", Proceedings of the IRE, 1952.
//
package hctree
