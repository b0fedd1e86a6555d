// This file is part of Petvis.
//
// Petvis is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Petvis is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Petvis.  If not, see <https://www.gnu.org/licenses/>.

// Package framebuffer provides a convenient way of working with OpenGL
// framebuffers.
//
// The Single type attaches one texture to a framebuffer object. The Flip
// type holds two textures and alternates between them on every call to
// Process(), which is what a feedback shader needs when it wants to read
// the previous result while writing the next one.
//
// The Setup() function must be called at least once after creation and as
// often as necessary to keep the dimensions correct. The Process() function
// attaches the framebuffer object and runs the supplied draw() function,
// returning the texture ID that was drawn to.
//
// Textures are created with the TextureSpec given at creation. RGBA is the
// normal choice. Red32F gives a single channel of full float precision,
// which the decay accumulator requires to avoid quantising the fade.
package framebuffer
