// SPDX-License-Identifier: MIT

package flow

// Rate exposes rate to flow_test. network.Graph never stores a zero
// resistance, so the ZeroResistance branch is only reachable from here.
var Rate = rate
